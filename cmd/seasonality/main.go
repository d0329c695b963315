// Command seasonality extracts periodic structure from a regularly
// sampled time series: dominant cycle frequencies via FFT plus an
// additive trend/seasonal/residual decomposition.
//
// Examples:
//
//	seasonality analyze --input generation.csv --column generation_mw --period 24
//	seasonality analyze --input generation.csv --column generation_mw --output decomposed.csv
//	seasonality synth --hours 2160 --seed 7 --period 24
package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-seasonal/seasonal"
	"github.com/cwbudde/algo-seasonal/series"
	"github.com/cwbudde/algo-seasonal/spectral"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "seasonality",
		Short:         "Seasonal structure analysis for time series",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAnalyzeCmd(), newSynthCmd())

	return root
}

type analysisOptions struct {
	period      int
	topK        int
	output      string
	exportLimit int
}

func (o *analysisOptions) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.period, "period", 24, "expected cycle length in samples")
	cmd.Flags().IntVar(&o.topK, "top", spectral.DefaultTopK, "number of dominant frequencies to report")
	cmd.Flags().StringVar(&o.output, "output", "", "CSV file for the decomposition export (empty: no export)")
	cmd.Flags().IntVar(&o.exportLimit, "export-limit", 168, "number of rows to export (<= 0: all)")
}

func newAnalyzeCmd() *cobra.Command {
	var (
		input  string
		column string
		opts   analysisOptions
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a labeled column of a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := series.ReadColumn(input, column)
			if err != nil {
				return err
			}

			fmt.Printf("Loaded %d samples from %s (column %q)\n\n", len(data), input, column)

			return runAnalysis(data, opts)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "CSV file to read")
	cmd.Flags().StringVar(&column, "column", "value", "column to analyze")
	opts.bind(cmd)

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newSynthCmd() *cobra.Command {
	var (
		hours int
		seed  int64
		opts  analysisOptions
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate and analyze a synthetic solar generation profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := series.Synthetic{Hours: hours, Seed: seed}.Generate()
			if err != nil {
				return err
			}

			fmt.Printf("Generated %d hours of synthetic generation data (seed %d)\n\n", hours, seed)

			return runAnalysis(data, opts)
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 90*24, "number of hourly samples to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the noise component")
	opts.bind(cmd)

	return cmd
}

func runAnalysis(data []float64, opts analysisOptions) error {
	printSummary(data)

	tr, err := spectral.New(data)
	if err != nil {
		return err
	}

	tr.Compute()

	if err := printDominant(tr.DominantFrequencies(opts.topK), len(data)); err != nil {
		return err
	}

	res, err := seasonal.Analyze(data, opts.period)
	if err != nil {
		return err
	}

	printStrength(res.Strength)

	if opts.output != "" {
		err := series.WriteDecomposition(opts.output, data, res.Trend, res.Seasonal, res.Residual, opts.exportLimit)
		if err != nil {
			return err
		}

		fmt.Printf("Decomposition exported to %s\n", opts.output)
	}

	return nil
}

func printSummary(data []float64) {
	s := series.Summarize(data)
	fmt.Printf("Summary: mean=%.4f stddev=%.4f min=%.4f max=%.4f rms=%.4f\n\n",
		s.Mean, s.StdDev, s.Min, s.Max, s.RMS)
}

func printDominant(dom []spectral.BinMagnitude, signalLen int) error {
	fmt.Println("Dominant frequencies:")

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "Rank\tBin\tPeriod [samples]\tMagnitude"); err != nil {
		return err
	}

	for i, d := range dom {
		period := seasonal.BinPeriod(d.Bin, signalLen)
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.1f\t%.2f\n", i+1, d.Bin, period, d.Magnitude); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Println()

	return nil
}

func printStrength(strength float64) {
	if math.IsNaN(strength) {
		fmt.Println("Seasonality strength: undefined (no seasonal or residual energy)")
		return
	}

	fmt.Printf("Seasonality strength: %.1f%%\n", strength*100)
}

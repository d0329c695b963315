package seasonal

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-seasonal/spectral"
)

// Errors returned by seasonal functions.
var (
	ErrEmptyInput    = errors.New("seasonal: input series is empty")
	ErrInvalidPeriod = errors.New("seasonal: period must be >= 1")
)

// seasonalTopK is the number of dominant bins used for the seasonal
// reconstruction.
const seasonalTopK = 3

// Decomposer performs an additive trend/seasonal/residual decomposition
// of a single series. It is not safe for concurrent use.
//
// The three extraction stages depend on each other in a fixed order, so
// only the composite [Decomposer.Decompose] is exposed.
type Decomposer struct {
	original []float64
	period   int

	trend    []float64
	seasonal []float64
	residual []float64
	dominant []spectral.BinMagnitude
}

// Result holds the outcome of a one-shot [Analyze] call.
type Result struct {
	Trend    []float64
	Seasonal []float64
	Residual []float64

	// Strength is the seasonality-strength heuristic, see
	// [Decomposer.SeasonalityStrength].
	Strength float64

	// Dominant lists the detrended series' dominant bins that were used
	// for the seasonal reconstruction, strongest first.
	Dominant []spectral.BinMagnitude
}

// NewDecomposer creates a Decomposer over the given series. The period is
// the expected cycle length in samples (e.g. 24 for daily structure in
// hourly data) and must be at least 1.
func NewDecomposer(data []float64, period int) (*Decomposer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	if period < 1 {
		return nil, ErrInvalidPeriod
	}

	return &Decomposer{
		original: data,
		period:   period,
		trend:    make([]float64, len(data)),
		seasonal: make([]float64, len(data)),
		residual: make([]float64, len(data)),
	}, nil
}

// Analyze is a one-shot decomposition of a series.
func Analyze(data []float64, period int) (Result, error) {
	d, err := NewDecomposer(data, period)
	if err != nil {
		return Result{}, err
	}

	if err := d.Decompose(); err != nil {
		return Result{}, err
	}

	return Result{
		Trend:    d.trend,
		Seasonal: d.seasonal,
		Residual: d.residual,
		Strength: d.SeasonalityStrength(),
		Dominant: d.dominant,
	}, nil
}

// Decompose runs trend, seasonal, and residual extraction in order.
func (d *Decomposer) Decompose() error {
	d.extractTrend()

	if err := d.extractSeasonal(); err != nil {
		return err
	}

	d.extractResidual()

	return nil
}

// Trend returns the trend component. The slice is owned by the Decomposer
// and is all zeros before [Decomposer.Decompose].
func (d *Decomposer) Trend() []float64 {
	return d.trend
}

// Seasonal returns the seasonal component, zero-mean over the series.
func (d *Decomposer) Seasonal() []float64 {
	return d.seasonal
}

// Residual returns the residual component.
func (d *Decomposer) Residual() []float64 {
	return d.residual
}

// DominantBins returns the detrended series' dominant frequency bins used
// for the seasonal reconstruction, strongest first.
func (d *Decomposer) DominantBins() []spectral.BinMagnitude {
	return d.dominant
}

// SeasonalityStrength returns the ratio of seasonal to seasonal-plus-
// residual energy:
//
//	strength = ms(seasonal) / (ms(seasonal) + ms(residual))
//
// where ms is the mean of squared elements (the second moment about zero,
// not the variance about the mean: seasonal is already zero-mean while
// residual deliberately is not re-centered).
//
// The value is a relative-strength heuristic, not a normalized statistic.
// When both components carry no energy the ratio degenerates to NaN.
func (d *Decomposer) SeasonalityStrength() float64 {
	varSeasonal := meanSquare(d.seasonal)
	varResidual := meanSquare(d.residual)

	return varSeasonal / (varSeasonal + varResidual)
}

// BinPeriod converts a dominant bin index into a cycle length in samples
// for a series of the given length. Returns 0 for bins below 1.
func BinPeriod(bin, length int) float64 {
	if bin < 1 {
		return 0
	}

	return float64(length) / float64(bin)
}

// extractTrend fills the trend with a centered moving average over the
// window [i-period/2, i+period/2]. Near the boundaries the window is
// clipped to valid indices and the divisor shrinks to the number of
// samples actually present.
func (d *Decomposer) extractTrend() {
	half := d.period / 2
	n := len(d.original)

	for i := range d.original {
		lo := i - half
		if lo < 0 {
			lo = 0
		}

		hi := i + half
		if hi > n-1 {
			hi = n - 1
		}

		d.trend[i] = floats.Sum(d.original[lo:hi+1]) / float64(hi-lo+1)
	}
}

// extractSeasonal rebuilds the seasonal component from the dominant bins
// of the detrended series. Phase information is discarded: each selected
// bin contributes a zero-phase cosine scaled by magnitude/length. The
// result is re-centered to zero mean.
func (d *Decomposer) extractSeasonal() error {
	detrended := make([]float64, len(d.original))
	floats.SubTo(detrended, d.original, d.trend)

	tr, err := spectral.New(detrended)
	if err != nil {
		return err
	}

	tr.Compute()
	d.dominant = tr.DominantFrequencies(seasonalTopK)

	n := float64(len(d.seasonal))
	for i := range d.seasonal {
		sum := 0.0
		for _, f := range d.dominant {
			amplitude := f.Magnitude / n
			sum += amplitude * math.Cos(2*math.Pi*float64(f.Bin)*float64(i)/n)
		}

		d.seasonal[i] = sum
	}

	mean := stat.Mean(d.seasonal, nil)
	for i := range d.seasonal {
		d.seasonal[i] -= mean
	}

	return nil
}

func (d *Decomposer) extractResidual() {
	copy(d.residual, d.original)
	floats.Sub(d.residual, d.trend)
	floats.Sub(d.residual, d.seasonal)
}

func meanSquare(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return floats.Dot(x, x) / float64(len(x))
}

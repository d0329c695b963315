// Package series loads, generates, and exports the real-valued sample
// sequences consumed by the spectral and seasonal packages.
package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Errors returned by series functions.
var (
	ErrColumnNotFound = errors.New("series: column not found")
	ErrNoHeader       = errors.New("series: file has no header row")
	ErrLengthMismatch = errors.New("series: component lengths differ")
)

// ReadColumn reads one named column of a CSV file into a sample sequence.
// The first row is treated as the header. Cells that do not parse as a
// float become 0; rows too short to contain the column are skipped.
func ReadColumn(path, column string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("series: opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, ErrNoHeader
	}

	colIdx := -1
	for i, name := range header {
		if name == column {
			colIdx = i
			break
		}
	}

	if colIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	var data []float64

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("series: reading %s: %w", path, err)
		}

		if colIdx >= len(record) {
			continue
		}

		v, err := strconv.ParseFloat(record[colIdx], 64)
		if err != nil {
			v = 0
		}

		data = append(data, v)
	}

	return data, nil
}

// WriteDecomposition exports a decomposed series as CSV with the columns
// Hour, Original, Trend, Seasonal, Residual. limit truncates the export
// to the first limit rows; limit <= 0 exports everything.
func WriteDecomposition(path string, original, trend, seasonal, residual []float64, limit int) error {
	n := len(original)
	if len(trend) != n || len(seasonal) != n || len(residual) != n {
		return ErrLengthMismatch
	}

	if limit <= 0 || limit > n {
		limit = n
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("series: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"Hour", "Original", "Trend", "Seasonal", "Residual"}); err != nil {
		return fmt.Errorf("series: writing header: %w", err)
	}

	for i := 0; i < limit; i++ {
		record := []string{
			strconv.Itoa(i),
			formatValue(original[i]),
			formatValue(trend[i]),
			formatValue(seasonal[i]),
			formatValue(residual[i]),
		}

		if err := w.Write(record); err != nil {
			return fmt.Errorf("series: writing row %d: %w", i, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("series: flushing %s: %w", path, err)
	}

	return f.Close()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

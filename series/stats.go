package series

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds basic descriptive statistics of a sample sequence.
type Summary struct {
	Length   int
	Mean     float64
	Variance float64 // unbiased sample variance
	StdDev   float64
	Min      float64
	Max      float64
	RMS      float64
}

// Summarize computes descriptive statistics for a series. An empty series
// yields a zero Summary.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	variance := stat.Variance(values, nil)

	return Summary{
		Length:   n,
		Mean:     stat.Mean(values, nil),
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      floats.Min(values),
		Max:      floats.Max(values),
		RMS:      math.Sqrt(floats.Dot(values, values) / float64(n)),
	}
}

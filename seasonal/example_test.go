package seasonal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-seasonal/seasonal"
)

func ExampleAnalyze() {
	// 64 hourly samples with a 16-hour cycle.
	data := make([]float64, 64)
	for i := range data {
		data[i] = 5 + math.Cos(2*math.Pi*float64(i)/16)
	}

	res, err := seasonal.Analyze(data, 16)
	if err != nil {
		panic(err)
	}

	maxErr := 0.0
	for i := range data {
		diff := math.Abs(data[i] - (res.Trend[i] + res.Seasonal[i] + res.Residual[i]))
		if diff > maxErr {
			maxErr = diff
		}
	}

	fmt.Printf("dominant bin: %d\n", res.Dominant[0].Bin)
	fmt.Printf("cycle length: %.0f samples\n", seasonal.BinPeriod(res.Dominant[0].Bin, len(data)))
	fmt.Printf("reconstruction exact: %t\n", maxErr < 1e-9)

	// Output:
	// dominant bin: 4
	// cycle length: 16 samples
	// reconstruction exact: true
}

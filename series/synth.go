package series

import (
	"errors"
	"math"
	"math/rand"
)

// ErrInvalidHours is returned when a synthetic series would be empty.
var ErrInvalidHours = errors.New("series: hours must be >= 1")

// Default synthetic profile parameters.
const (
	defaultBaseLoad        = 0.2
	defaultSolarAmplitude  = 0.6
	defaultAnnualAmplitude = 0.2
	defaultNoiseAmplitude  = 0.1
)

// Synthetic describes a solar-like hourly generation profile: a daytime
// production bump, a slow annual drift, uniform noise, and a base load.
// Zero-valued amplitude fields fall back to the defaults above.
type Synthetic struct {
	Hours           int
	BaseLoad        float64
	SolarAmplitude  float64
	AnnualAmplitude float64
	NoiseAmplitude  float64
	Seed            int64
}

func (s Synthetic) normalize() Synthetic {
	if s.BaseLoad == 0 {
		s.BaseLoad = defaultBaseLoad
	}

	if s.SolarAmplitude == 0 {
		s.SolarAmplitude = defaultSolarAmplitude
	}

	if s.AnnualAmplitude == 0 {
		s.AnnualAmplitude = defaultAnnualAmplitude
	}

	if s.NoiseAmplitude == 0 {
		s.NoiseAmplitude = defaultNoiseAmplitude
	}

	return s
}

// Generate creates the synthetic hourly series. The same Seed always
// produces the same sequence.
func (s Synthetic) Generate() ([]float64, error) {
	if s.Hours < 1 {
		return nil, ErrInvalidHours
	}

	s = s.normalize()
	rng := rand.New(rand.NewSource(s.Seed))

	data := make([]float64, s.Hours)
	for i := range data {
		hour := i % 24
		day := i / 24

		// Solar production: zero at night, sinusoidal bump peaking at noon.
		solar := math.Max(0, math.Sin((float64(hour)-6)*math.Pi/12)) * s.SolarAmplitude

		annual := s.AnnualAmplitude * math.Sin(2*math.Pi*float64(day)/365)
		noise := (rng.Float64() - 0.5) * s.NoiseAmplitude

		data[i] = solar + annual + noise + s.BaseLoad
	}

	return data, nil
}

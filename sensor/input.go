package sensor

import (
	"fmt"
	"math"
)

const (
	energyScale = 0.00001
	binSlope    = 0.0025
)

// Input is the per-sensor FFT input: magnitude samples and per-bin weights.
type Input struct {
	// Samples[s] has signalLength entries.
	Samples [][]float64
	// Weights[s] has signalLength/2+1 entries, one per non-negative bin.
	Weights [][]float64
}

// FromAccelerometer converts the first signalLength samples of every sensor
// into vector magnitudes sqrt(x²+y²+z²) and derives weights from the mean
// magnitude of the window: w[k] = 1 + mean*1e-5 + 0.0025*k.
func FromAccelerometer(batch Batch, signalLength int) (Input, error) {
	if len(batch.Sensors) == 0 {
		return Input{}, ErrEmptyBatch
	}
	if signalLength <= 0 {
		return Input{}, fmt.Errorf("sensor: signalLength must be > 0: %d", signalLength)
	}
	freqBins := signalLength/2 + 1

	in := Input{
		Samples: make([][]float64, len(batch.Sensors)),
		Weights: make([][]float64, len(batch.Sensors)),
	}
	for s, sd := range batch.Sensors {
		if len(sd.X) < signalLength || len(sd.Y) < signalLength || len(sd.Z) < signalLength {
			return Input{}, fmt.Errorf("%w: sensor %d has %d, need %d",
				ErrShortSensor, s, min(len(sd.X), len(sd.Y), len(sd.Z)), signalLength)
		}

		samples := make([]float64, signalLength)
		energy := 0.0
		for i := range samples {
			samples[i] = magnitude(sd.X[i], sd.Y[i], sd.Z[i])
			energy += samples[i]
		}
		normalized := energy / float64(signalLength)

		weights := make([]float64, freqBins)
		for k := range weights {
			weights[k] = 1 + normalized*energyScale + binSlope*float64(k)
		}

		in.Samples[s] = samples
		in.Weights[s] = weights
	}
	return in, nil
}

func magnitude(x, y, z int32) float64 {
	sum := int64(x)*int64(x) + int64(y)*int64(y) + int64(z)*int64(z)
	return math.Sqrt(float64(sum))
}

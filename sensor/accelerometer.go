package sensor

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// TimestampStep is the sample spacing in milliseconds (~50 Hz).
	TimestampStep = 20

	accScale = 1024.0
)

var axisAmplitudes = [3]float64{0.8, 1.1, 1.3}

// SensorData is one accelerometer window. All slices have the same length.
type SensorData struct {
	Timestamps []int32
	X, Y, Z    []int32
}

// Len returns the number of samples in the window.
func (s SensorData) Len() int { return len(s.Timestamps) }

// MADInput returns the window in the row layout expected by the MAD model:
// timestamps, x, y, z.
func (s SensorData) MADInput() [][]int32 {
	return [][]int32{s.Timestamps, s.X, s.Y, s.Z}
}

// Batch holds simultaneous windows from several sensors.
type Batch struct {
	Sensors []SensorData
}

// Generate builds a batch of numSensors windows with samplesPerSensor samples
// each. Every axis is a two-tone sine (base frequency 0.2+0.05*s cycles per
// window) scaled to accelerometer counts plus uniform noise whose width grows
// with the sensor index.
func Generate(numSensors, samplesPerSensor int, opts ...Option) (Batch, error) {
	if numSensors <= 0 {
		return Batch{}, fmt.Errorf("sensor: numSensors must be > 0: %d", numSensors)
	}
	if samplesPerSensor <= 0 {
		return Batch{}, fmt.Errorf("sensor: samplesPerSensor must be > 0: %d", samplesPerSensor)
	}
	cfg := applyOptions(opts)

	sensors := make([]SensorData, numSensors)
	for s := range sensors {
		rng := rand.New(rand.NewSource(cfg.seed + int64(s)))

		ts := make([]int32, samplesPerSensor)
		base := s * samplesPerSensor * TimestampStep
		for i := range ts {
			ts[i] = int32(base + i*TimestampStep)
		}

		sensors[s] = SensorData{
			Timestamps: ts,
			X:          generateAxis(rng, samplesPerSensor, s, axisAmplitudes[0]),
			Y:          generateAxis(rng, samplesPerSensor, s, axisAmplitudes[1]),
			Z:          generateAxis(rng, samplesPerSensor, s, axisAmplitudes[2]),
		}
	}
	return Batch{Sensors: sensors}, nil
}

func generateAxis(rng *rand.Rand, n, sensorIndex int, amplitude float64) []int32 {
	baseFreq := 0.2 + float64(sensorIndex)*0.05
	noiseScale := float64(sensorIndex+1) * 0.3

	out := make([]int32, n)
	for i := range out {
		t := float64(i) / float64(n)
		wave := math.Sin(2*math.Pi*baseFreq*t) + 0.5*math.Sin(2*math.Pi*baseFreq*2*t)
		noise := (rng.Float64() - 0.5) * noiseScale
		out[i] = int32(amplitude*wave*accScale + noise)
	}
	return out
}

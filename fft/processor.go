package fft

import (
	"context"
	"fmt"
	"time"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"go.uber.org/zap"
)

// Tag names the processor's logger.
const Tag = "FftCpuProcessor"

const (
	backendFFT = "algofft"
	backendDFT = "dft"
)

// Processor computes weighted magnitude spectra for a fixed sensor layout.
// It holds no mutable state and may be shared between goroutines.
type Processor struct {
	numSensors   int
	signalLength int
	freqBins     int
	cfg          config
}

// NewProcessor returns a processor for numSensors windows of signalLength
// samples. signalLength must be at least 2.
func NewProcessor(numSensors, signalLength int, opts ...Option) (*Processor, error) {
	if signalLength <= 1 {
		return nil, fmt.Errorf("%w: must be > 1: %d", ErrSignalLength, signalLength)
	}
	if numSensors <= 0 {
		return nil, fmt.Errorf("%w: must be > 0: %d", ErrSensorCount, numSensors)
	}
	return &Processor{
		numSensors:   numSensors,
		signalLength: signalLength,
		freqBins:     signalLength/2 + 1,
		cfg:          applyOptions(opts),
	}, nil
}

// FreqBins returns the number of bins per sensor, signalLength/2+1.
func (p *Processor) FreqBins() int { return p.freqBins }

// Process transforms samples[s] and scales its magnitudes by weights[s].
// ctx is checked between sensors.
func (p *Processor) Process(ctx context.Context, samples, weights [][]float64) (Result, error) {
	log := p.cfg.logger
	if err := p.validate(samples, weights); err != nil {
		return Result{}, err
	}
	log.Info("starting CPU FFT",
		zap.Int("sensors", p.numSensors),
		zap.Int("samples", p.signalLength))

	var plan *algofft.Plan[complex128]
	backend := backendDFT
	switch {
	case p.cfg.directDFT:
	case !isPowerOfTwo(p.signalLength):
		// Mixed-radix plans are not trusted: some composite lengths
		// (40, 80, 1000, ...) produce wrong bins.
		log.Debug("length is not a power of two, using direct DFT",
			zap.Int("samples", p.signalLength))
	default:
		pl, err := algofft.NewPlan64(p.signalLength)
		if err != nil {
			log.Debug("no FFT plan for length, using direct DFT",
				zap.Int("samples", p.signalLength), zap.Error(err))
		} else {
			plan = pl
			backend = backendFFT
		}
	}

	res := Result{
		Spectrum:           make([][]complex128, p.numSensors),
		Magnitudes:         make([][]float64, p.numSensors),
		WeightedMagnitudes: make([][]float64, p.numSensors),
		Backend:            backend,
	}

	var packed, full []complex128
	if plan != nil {
		packed = make([]complex128, p.signalLength)
		full = make([]complex128, p.signalLength)
	}
	re := make([]float64, p.freqBins)
	im := make([]float64, p.freqBins)

	for s := range samples {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		bins := make([]complex128, p.freqBins)

		if plan != nil {
			start := time.Now()
			for i, v := range samples[s] {
				packed[i] = complex(v, 0)
			}
			res.Timing.Transfer += time.Since(start)
		}

		start := time.Now()
		if plan != nil {
			if err := plan.Forward(full, packed); err != nil {
				return Result{}, fmt.Errorf("fft: sensor %d: %w", s, err)
			}
			copy(bins, full[:p.freqBins])
		} else {
			directDFT(bins, samples[s], log, s)
		}

		for k, c := range bins {
			re[k] = real(c)
			im[k] = imag(c)
		}
		mag := make([]float64, p.freqBins)
		weighted := make([]float64, p.freqBins)
		vecmath.Magnitude(mag, re, im)
		vecmath.MulBlock(weighted, mag, weights[s])
		elapsed := time.Since(start)
		res.Timing.Compute += elapsed

		res.Spectrum[s] = bins
		res.Magnitudes[s] = mag
		res.WeightedMagnitudes[s] = weighted

		log.Info("sensor finished",
			zap.Int("sensor", s+1),
			zap.Int("of", p.numSensors),
			zap.Duration("elapsed", elapsed))
	}

	log.Info("CPU FFT finished",
		zap.String("backend", backend),
		zap.Duration("transfer", res.Timing.Transfer),
		zap.Duration("compute", res.Timing.Compute))
	return res, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func (p *Processor) validate(samples, weights [][]float64) error {
	if len(samples) != p.numSensors {
		return fmt.Errorf("%w: want %d sample rows, got %d", ErrSensorCount, p.numSensors, len(samples))
	}
	if len(weights) != p.numSensors {
		return fmt.Errorf("%w: want %d weight rows, got %d", ErrSensorCount, p.numSensors, len(weights))
	}
	for s := range samples {
		if len(samples[s]) != p.signalLength {
			return fmt.Errorf("%w: sensor %d has %d samples, want %d",
				ErrSignalLength, s, len(samples[s]), p.signalLength)
		}
		if len(weights[s]) != p.freqBins {
			return fmt.Errorf("%w: sensor %d has %d weights, want %d",
				ErrWeightLength, s, len(weights[s]), p.freqBins)
		}
	}
	return nil
}

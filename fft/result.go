package fft

import "time"

// Timing splits the cost of a run into preparing inputs and computing.
type Timing struct {
	Transfer time.Duration
	Compute  time.Duration
}

// Total returns Transfer + Compute.
func (t Timing) Total() time.Duration { return t.Transfer + t.Compute }

// Result holds per-sensor spectra. Every row has signalLength/2+1 bins.
type Result struct {
	Spectrum           [][]complex128
	Magnitudes         [][]float64
	WeightedMagnitudes [][]float64

	// Backend is "algofft" or "dft".
	Backend string
	Timing  Timing
}

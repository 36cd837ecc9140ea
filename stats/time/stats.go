// Package time summarizes repeated duration measurements.
//
// Values are plain float64 (the benchmark feeds milliseconds). Variance is the
// population variance, matching how benchmark rows are reported on device.
package time

import "math"

// Stats summarizes a set of measurements.
type Stats struct {
	Count    int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
	Sum      float64
}

// Calculate computes Stats in a single pass using Welford's online algorithm.
// An empty input yields the zero Stats.
func Calculate(values []float64) Stats {
	s := NewStreamingStats()
	s.Update(values...)
	return s.Result()
}

// Throughput returns operations per second for a run that took meanMs
// milliseconds. Non-positive durations yield 0.
func Throughput(operations, meanMs float64) float64 {
	if meanMs <= 0 {
		return 0
	}
	return operations / (meanMs / 1000)
}

// StreamingStats accumulates measurements one at a time. Its result is
// identical to [Calculate] over the same sequence.
type StreamingStats struct {
	n      int
	mean   float64
	m2     float64
	sum    float64
	minVal float64
	maxVal float64
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds values to the running statistics.
func (s *StreamingStats) Update(values ...float64) {
	for _, x := range values {
		s.n++
		delta := x - s.mean
		s.mean += delta / float64(s.n)
		s.m2 += delta * (x - s.mean)
		s.sum += x

		if s.n == 1 {
			s.minVal = x
			s.maxVal = x
			continue
		}
		if x < s.minVal {
			s.minVal = x
		}
		if x > s.maxVal {
			s.maxVal = x
		}
	}
}

// Count returns the number of values seen.
func (s *StreamingStats) Count() int { return s.n }

// Result computes the final statistics from accumulated data.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}
	variance := s.m2 / float64(s.n)
	if variance < 0 {
		variance = 0
	}
	return Stats{
		Count:    s.n,
		Mean:     s.mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      s.minVal,
		Max:      s.maxVal,
		Sum:      s.sum,
	}
}

// Reset clears all accumulated data, allowing the StreamingStats to be reused.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}

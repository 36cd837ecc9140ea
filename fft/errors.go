package fft

import "errors"

var (
	// ErrSensorCount is returned when the number of sensor rows is wrong.
	ErrSensorCount = errors.New("fft: sensor count mismatch")

	// ErrSignalLength is returned for invalid or mismatched window lengths.
	ErrSignalLength = errors.New("fft: invalid signal length")

	// ErrWeightLength is returned when a weight vector does not cover every bin.
	ErrWeightLength = errors.New("fft: weight vector length mismatch")
)

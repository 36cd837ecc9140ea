package sensor

import "errors"

var (
	// ErrEmptyBatch is returned when a batch has no sensors.
	ErrEmptyBatch = errors.New("sensor: batch has no sensors")

	// ErrShortSensor is returned when a sensor has fewer samples than requested.
	ErrShortSensor = errors.New("sensor: not enough samples")
)

// Package sensor produces synthetic accelerometer windows and turns them into
// FFT-ready input.
//
// Batches are deterministic for a given seed so benchmark runs on different
// devices process identical data.
package sensor

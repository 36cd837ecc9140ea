// Package fft is the CPU baseline for the vkfft benchmarks.
//
// A [Processor] takes one real window per sensor, computes the non-negative
// frequency bins of its DFT and returns plain and weighted magnitudes together
// with transfer and compute timings. Power-of-two lengths run on algo-fft
// plans; every other length uses a direct O(n²) DFT.
package fft

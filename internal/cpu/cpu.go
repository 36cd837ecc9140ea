// Package cpu names the vector path algo-vecmath takes on this machine.
//
// Detection is delegated to algo-vecmath/cpu, the same cache its block
// kernels dispatch on, so the level reported in diagnostics is the one
// ScaleBlock and Magnitude actually run.
package cpu

import vcpu "github.com/cwbudde/algo-vecmath/cpu"

// SIMDLevel names a kernel family.
type SIMDLevel int

const (
	// SIMDNone means the pure Go loops.
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX2
	SIMDNEON
)

// String returns a short lower-case name for the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX2:
		return "avx2"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// LevelOf returns the widest kernel family f allows. ForceGeneric wins over
// every feature flag.
func LevelOf(f vcpu.Features) SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// Level returns the kernel family for the detected (or forced) features.
func Level() SIMDLevel {
	return LevelOf(vcpu.DetectFeatures())
}

// Architecture returns runtime.GOARCH as recorded by detection.
func Architecture() string {
	return vcpu.DetectFeatures().Architecture
}

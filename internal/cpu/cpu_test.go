package cpu

import (
	"runtime"
	"testing"

	vcpu "github.com/cwbudde/algo-vecmath/cpu"
)

func TestArchitecture(t *testing.T) {
	vcpu.ResetDetection()
	defer vcpu.ResetDetection()

	if got := Architecture(); got != runtime.GOARCH {
		t.Fatalf("Architecture()=%q want=%q", got, runtime.GOARCH)
	}
}

func TestLevelFollowsForcedFeatures(t *testing.T) {
	tests := []struct {
		name     string
		features vcpu.Features
		want     SIMDLevel
	}{
		{"generic-forced", vcpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true, Architecture: "amd64"}, SIMDNone},
		{"sse2", vcpu.Features{HasSSE2: true, Architecture: "amd64"}, SIMDSSE2},
		{"avx2", vcpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"}, SIMDAVX2},
		{"neon", vcpu.Features{HasNEON: true, Architecture: "arm64"}, SIMDNEON},
		{"none", vcpu.Features{Architecture: "arm"}, SIMDNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vcpu.SetForcedFeatures(tt.features)
			defer vcpu.ResetDetection()

			if got := Level(); got != tt.want {
				t.Fatalf("Level()=%v want=%v", got, tt.want)
			}
			if got := LevelOf(tt.features); got != tt.want {
				t.Fatalf("LevelOf()=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestSIMDLevelString(t *testing.T) {
	if SIMDAVX2.String() != "avx2" || SIMDNEON.String() != "neon" || SIMDNone.String() != "generic" || SIMDLevel(99).String() != "unknown" {
		t.Fatal("unexpected SIMDLevel names")
	}
}

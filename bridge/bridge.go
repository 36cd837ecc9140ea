package bridge

import (
	"github.com/cwbudde/algo-vecmath"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-vkfft/internal/cpu"
)

const (
	// Tag is the log tag used for every diagnostic record.
	Tag = "VkFFTBridge"

	// Symbol is the JNI name of com.seuprojeto.vkfftlib.VulkanBridge.runVkFFT.
	Symbol = "Java_com_seuprojeto_vkfftlib_VulkanBridge_runVkFFT"

	// Factor is applied to every element. It simulates processing until the
	// GPU FFT exists.
	Factor = 2.0
)

// Transform returns a new slice with out[i] = in[i] * Factor.
//
// in is only read. NaN and infinities follow IEEE-754 multiplication. An empty
// or nil input yields an empty, non-nil result.
func Transform(in []float64) []float64 {
	out := make([]float64, len(in))
	if len(in) > 0 {
		vecmath.ScaleBlock(out, in, Factor)
	}

	Logger().Info("runVkFFT",
		zap.Int("len", len(in)),
		zap.Stringer("simd", cpu.Level()))

	return out
}

// Invoke is the boundary entry point. valid reports whether the runtime handed
// over a usable array reference; when it did not, Invoke returns
// ErrInvalidInput and no result so the adapter can raise a runtime-level
// error instead of returning a partial array.
func Invoke(in []float64, valid bool) ([]float64, error) {
	if !valid {
		Logger().Warn("runVkFFT rejected input", zap.Error(ErrInvalidInput))
		return nil, ErrInvalidInput
	}
	return Transform(in), nil
}

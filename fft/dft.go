package fft

import (
	"math"

	"go.uber.org/zap"
)

// directDFT writes the first len(dst) bins of the DFT of the real signal x.
// Sums are accumulated in float64 with the angle reduced per term.
func directDFT(dst []complex128, x []float64, log *zap.Logger, sensor int) {
	n := len(x)
	step := max(len(dst)/8, 1)
	w := 2 * math.Pi / float64(n)

	for k := range dst {
		var re, im float64
		for i, v := range x {
			// k*i mod n keeps the argument small for long windows.
			angle := w * float64((k*i)%n)
			re += v * math.Cos(angle)
			im -= v * math.Sin(angle)
		}
		dst[k] = complex(re, im)

		if k%step == 0 || k == len(dst)-1 {
			log.Debug("direct DFT progress",
				zap.Int("sensor", sensor),
				zap.Int("percent", min((k+1)*100/len(dst), 100)))
		}
	}
}

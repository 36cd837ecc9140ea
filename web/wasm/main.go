//go:build js && wasm

// Command wasm exposes the bridge to JavaScript as vkfft.runVkFFT.
package main

import (
	"syscall/js"

	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-vkfft/bridge"
	"github.com/cwbudde/algo-vkfft/internal/logcat"
)

var funcs []js.Func

func main() {
	bridge.SetLogger(logcat.New(bridge.Tag, zapcore.InfoLevel))

	api := js.Global().Get("Object").New()
	api.Set("runVkFFT", export(func(args []js.Value) any {
		in, ok := readFloat64s(args)
		out, err := bridge.Invoke(in, ok)
		if err != nil {
			return js.Global().Get("TypeError").New(err.Error())
		}
		arr := js.Global().Get("Float64Array").New(len(out))
		for i := range out {
			arr.SetIndex(i, out[i])
		}
		return arr
	}))

	js.Global().Set("vkfft", api)
	select {}
}

// readFloat64s accepts a Float64Array or an Array of numbers.
func readFloat64s(args []js.Value) ([]float64, bool) {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		return nil, false
	}
	input := args[0]
	if input.Get("length").Type() != js.TypeNumber {
		return nil, false
	}
	in := make([]float64, input.Length())
	for i := range in {
		v := input.Index(i)
		if v.Type() != js.TypeNumber {
			return nil, false
		}
		in[i] = v.Float()
	}
	return in, true
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

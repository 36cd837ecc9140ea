package bridge_test

import (
	"fmt"

	"github.com/cwbudde/algo-vkfft/bridge"
)

func ExampleTransform() {
	out := bridge.Transform([]float64{1.0, -2.5, 0.0})
	fmt.Println(out)
	// Output:
	// [2 -5 0]
}

func ExampleInvoke() {
	_, err := bridge.Invoke(nil, false)
	fmt.Println(err)
	// Output:
	// vkfft bridge: invalid input array reference
}

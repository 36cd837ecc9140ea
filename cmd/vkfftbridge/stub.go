//go:build !(cgo && (android || jni))

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "vkfftbridge is a JNI library: build it with cgo and -buildmode=c-shared for android, or with -tags jni")
	os.Exit(1)
}

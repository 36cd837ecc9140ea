// Package bridge implements the native entry point behind the
// VulkanBridge.runVkFFT method of the Android vkfft library.
//
// The transform is a placeholder: every input value is doubled into a freshly
// allocated slice of the same length. The real GPU FFT has not been written,
// and callers must not depend on anything beyond the doubling contract.
//
// The package is free of cgo so the transform can be tested on any host. The
// JNI symbol lives in cmd/vkfftbridge and the JavaScript export in web/wasm;
// both only marshal arrays and call [Invoke].
package bridge

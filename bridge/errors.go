package bridge

import "errors"

// ErrInvalidInput is returned by [Invoke] when the caller passed a null or
// otherwise inaccessible array reference.
var ErrInvalidInput = errors.New("vkfft bridge: invalid input array reference")

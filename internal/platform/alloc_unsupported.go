//go:build !linux && !darwin

package platform

import "errors"

// ErrUnsupportedPlatform is returned when the page-locked allocator has no
// implementation for this GOOS.
var ErrUnsupportedPlatform = errors.New("platform: page-locked allocation not supported on this platform")

func AllocateLocked(size int) ([]byte, error) {
	return nil, ErrUnsupportedPlatform
}

func Release(buf []byte) error {
	return nil
}

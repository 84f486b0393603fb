//go:build !linux && !darwin

package platform

// TotalMemory returns an error on platforms with no AllocateLocked
// implementation either; see ErrUnsupportedPlatform.
func TotalMemory() (uint64, error) {
	return 0, ErrUnsupportedPlatform
}

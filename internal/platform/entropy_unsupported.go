//go:build !amd64

package platform

import "errors"

// ErrNoEntropySource is returned when the hardware entropy source required
// by the engine's RNG seeding step (§4.E) is not available.
var ErrNoEntropySource = errors.New("platform: hardware entropy source not available on this architecture")

// Entropy always fails on non-amd64 builds (spec §1 Non-goals: non-x86
// architectures).
func Entropy() (uint64, error) {
	return 0, ErrNoEntropySource
}

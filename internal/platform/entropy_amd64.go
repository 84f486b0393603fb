//go:build amd64

package platform

import "errors"

// ErrNoEntropySource is returned when the hardware entropy source required
// by the engine's RNG seeding step (§4.E) is not available.
var ErrNoEntropySource = errors.New("platform: hardware entropy source (RDRAND) not available")

//go:noescape
func rdrand64() (value uint64, ok bool)

// Entropy draws one 64-bit value from RDRAND (§6 "hardware entropy
// source"), retrying a handful of times if the instruction reports CF=0
// (underflow), as Intel's RDRAND usage guidance recommends. The caller
// (rng.go) is responsible for the "both words zero" re-seed rule in §4.E;
// this function only guarantees a successfully-drawn value, not a non-zero
// one.
func Entropy() (uint64, error) {
	if !CpuFeatures.HasRDRAND() {
		return 0, ErrNoEntropySource
	}
	const maxRetries = 10
	for i := 0; i < maxRetries; i++ {
		v, ok := rdrand64()
		if ok {
			return v, nil
		}
	}
	return 0, errors.New("platform: RDRAND underflowed repeatedly")
}

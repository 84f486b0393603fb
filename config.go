package manganese

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/Gunzinger/manganese/internal/asm"
	"github.com/Gunzinger/manganese/internal/platform"
)

// Config controls how NewConfiguredEngine selects and wires an Engine
// (§4.F "At startup: query the CPU ... pick the matching engine variant;
// determine worker count ... seed the RNG and zero the error counter").
type Config struct {
	// CPUs is the worker count to partition sweeps across. Zero means
	// runtime.NumCPU(); a larger value is capped at runtime.NumCPU() (§4.F
	// "min of CPU affinity and configured thread count" -- affinity is
	// approximated here by NumCPU).
	CPUs int

	// ErrorWriter receives verify-mismatch lines (§6 Outputs). Defaults to
	// os.Stderr.
	ErrorWriter io.Writer
}

// clone copies c, filling in documented defaults.
func (c Config) clone() Config {
	if c.CPUs <= 0 || c.CPUs > runtime.NumCPU() {
		c.CPUs = runtime.NumCPU()
	}
	if c.ErrorWriter == nil {
		c.ErrorWriter = os.Stderr
	}
	return c
}

// NewConfiguredEngine selects the widest usable ISA backend for this CPU
// (AVX-512F+BW preferred, AVX2 fallback), seeds its RNG from the platform
// entropy source, and returns a ready-to-run Engine. It returns a setup
// error (§7 "missing CPU features, allocation or locking failure, hardware
// entropy unavailable") without ever starting the test loop.
func NewConfiguredEngine(c Config) (*Engine, error) {
	c = c.clone()

	isa, err := newISA()
	if err != nil {
		return nil, err
	}

	e := NewEngine(isa, c.CPUs)
	e.SetErrorWriter(c.ErrorWriter)

	if err := e.SeedRNG(platform.Entropy); err != nil {
		return nil, fmt.Errorf("manganese: seeding RNG: %w", err)
	}
	return e, nil
}

// pickByFeatures chooses between the AVX-512 and AVX2 backends given the
// CPU's reported feature set, preferring the wider vector whenever both
// are usable (§4.F "query the CPU for AVX-512 ... vs AVX2 and pick the
// matching engine variant").
func pickByFeatures(f platform.CpuFeatureFlags) (asm.ISA, error) {
	switch {
	case f.HasAVX512():
		return avx512ISA(), nil
	case f.HasAVX2():
		return avx2ISA(), nil
	default:
		return nil, fmt.Errorf("manganese: CPU supports neither AVX-512F+BW nor AVX2")
	}
}

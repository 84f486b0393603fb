package platform

// CpuFeatureFlags reports which of the instruction-set extensions this
// engine cares about are present. Implemented by cpuid_amd64.go (backed by
// golang.org/x/sys/cpu) and cpuid_unsupported.go (always false, spec §1
// Non-goals: non-x86 architectures).
type CpuFeatureFlags interface {
	// HasAVX2 reports whether the AVX2 backend can run.
	HasAVX2() bool
	// HasAVX512 reports whether the AVX-512F+BW backend can run. BW
	// (byte/word) is required because Verify's mask compare and the
	// word-granularity shifts both need it (§4.F "with byte/word support").
	HasAVX512() bool
	// HasRDRAND reports whether the hardware entropy source is usable.
	HasRDRAND() bool
}

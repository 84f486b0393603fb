//go:build amd64

package platform

import "golang.org/x/sys/cpu"

// CpuFeatures exposes the capabilities of this CPU, queried once at
// package init (mirrors tetratelabs-wazero's internal/platform
// CpuFeatures package variable).
var CpuFeatures = loadCpuFeatureFlags()

type cpuFeatureFlags struct {
	avx2   bool
	avx512 bool
	rdrand bool
}

func loadCpuFeatureFlags() CpuFeatureFlags {
	return &cpuFeatureFlags{
		avx2:   cpu.X86.HasAVX2,
		avx512: cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW,
		rdrand: cpu.X86.HasRDRAND,
	}
}

func (f *cpuFeatureFlags) HasAVX2() bool   { return f.avx2 }
func (f *cpuFeatureFlags) HasAVX512() bool { return f.avx512 }
func (f *cpuFeatureFlags) HasRDRAND() bool { return f.rdrand }

//go:build !amd64

package platform

// CpuFeatures reports no usable SIMD backend on non-amd64 architectures
// (spec §1 Non-goals: non-x86 architectures). config_unsupported.go turns
// this into a setup error before the engine ever starts.
var CpuFeatures CpuFeatureFlags = &cpuFeatureFlags{}

type cpuFeatureFlags struct{}

func (f *cpuFeatureFlags) HasAVX2() bool   { return false }
func (f *cpuFeatureFlags) HasAVX512() bool { return false }
func (f *cpuFeatureFlags) HasRDRAND() bool { return false }

//go:build amd64

package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"
)

func TestCpuFeaturesMatchesXSysCpu(t *testing.T) {
	require.Equal(t, cpu.X86.HasAVX2, CpuFeatures.HasAVX2())
	require.Equal(t, cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW, CpuFeatures.HasAVX512())
	require.Equal(t, cpu.X86.HasRDRAND, CpuFeatures.HasRDRAND())
}

func TestEntropyRespectsFeatureDetection(t *testing.T) {
	v, err := Entropy()
	if !CpuFeatures.HasRDRAND() {
		require.ErrorIs(t, err, ErrNoEntropySource)
		return
	}
	require.NoError(t, err)
	_ = v
}

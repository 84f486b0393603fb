//go:build amd64

package manganese

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunzinger/manganese/internal/platform"
)

type fakeFeatures struct {
	avx2, avx512, rdrand bool
}

func (f fakeFeatures) HasAVX2() bool   { return f.avx2 }
func (f fakeFeatures) HasAVX512() bool { return f.avx512 }
func (f fakeFeatures) HasRDRAND() bool { return f.rdrand }

func TestPickByFeaturesPrefersAVX512(t *testing.T) {
	isa, err := pickByFeatures(fakeFeatures{avx2: true, avx512: true})
	require.NoError(t, err)
	require.Equal(t, 64, isa.Width())
}

func TestPickByFeaturesFallsBackToAVX2(t *testing.T) {
	isa, err := pickByFeatures(fakeFeatures{avx2: true})
	require.NoError(t, err)
	require.Equal(t, 32, isa.Width())
}

func TestPickByFeaturesErrorsWithNeither(t *testing.T) {
	_, err := pickByFeatures(fakeFeatures{})
	require.Error(t, err)
}

var _ platform.CpuFeatureFlags = fakeFeatures{}

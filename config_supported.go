//go:build amd64

package manganese

import (
	"github.com/Gunzinger/manganese/internal/asm"
	"github.com/Gunzinger/manganese/internal/asm/avx2"
	"github.com/Gunzinger/manganese/internal/asm/avx512"
	"github.com/Gunzinger/manganese/internal/platform"
)

func newISA() (asm.ISA, error) {
	return pickByFeatures(platform.CpuFeatures)
}

func avx512ISA() asm.ISA { return avx512.ISA{} }
func avx2ISA() asm.ISA   { return avx2.ISA{} }

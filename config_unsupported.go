//go:build !amd64

package manganese

import (
	"fmt"

	"github.com/Gunzinger/manganese/internal/asm"
)

func newISA() (asm.ISA, error) {
	return nil, fmt.Errorf("manganese: no ISA backend for GOARCH, amd64 required")
}

func avx512ISA() asm.ISA { return nil }
func avx2ISA() asm.ISA   { return nil }

package asm

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestAlignSliceAlignment(t *testing.T) {
	for _, width := range []int{32, 64} {
		v := AlignSlice(width)
		require.Equal(t, width, len(v))
		addr := uintptr(unsafe.Pointer(&v[0]))
		require.Equal(t, uintptr(0), addr%uintptr(width))
	}
}

func TestAlignSliceZeroed(t *testing.T) {
	v := AlignSlice(32)
	for _, b := range v {
		require.Equal(t, byte(0), b)
	}
}

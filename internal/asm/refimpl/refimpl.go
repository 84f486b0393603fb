// Package refimpl is a pure-Go, architecture-independent implementation of
// internal/asm.ISA. It exists the same way wazero keeps its interpreter
// engine alongside the JIT engine: a software reference that implements
// the exact same contract as the assembly backends, so the engine and its
// test routines can be exercised on any GOARCH and in tests that must not
// depend on the host actually having AVX2 or AVX-512.
package refimpl

import (
	"encoding/binary"
	"fmt"

	"github.com/Gunzinger/manganese/internal/asm"
)

// ISA is a software model of the vector primitives, at a caller-chosen
// width. It is never selected by config_supported.go; production builds
// always pick avx2 or avx512.
type ISA struct {
	width int
}

// New returns an ISA operating on width-byte vectors. width must be a
// power of two multiple of 8.
func New(width int) ISA { return ISA{width: width} }

var _ asm.ISA = ISA{}

func (i ISA) Width() int { return i.width }

func (i ISA) Store(buf []byte, off int, v []byte) {
	copy(buf[off:off+i.width], v)
}

func (i ISA) Verify(buf []byte, off int, expected []byte) asm.VerifyReport {
	actual := buf[off : off+i.width]
	var mismatched int
	var mask uint64
	for b := 0; b < i.width; b++ {
		if actual[b] != expected[b] {
			mismatched++
			if b < 64 {
				mask |= 1 << uint(b)
			}
		}
	}
	return asm.VerifyReport{MismatchedBytes: mismatched, Mask: mask, Ok: mismatched == 0}
}

func (i ISA) BroadcastByte(b byte) []byte {
	v := make([]byte, i.width)
	for j := range v {
		v[j] = b
	}
	return v
}

func (i ISA) BroadcastWord(w uint16) []byte {
	v := make([]byte, i.width)
	for off := 0; off < i.width; off += 2 {
		binary.LittleEndian.PutUint16(v[off:], w)
	}
	return v
}

func (i ISA) BroadcastDWord(d uint32) []byte {
	v := make([]byte, i.width)
	for off := 0; off < i.width; off += 4 {
		binary.LittleEndian.PutUint32(v[off:], d)
	}
	return v
}

func (i ISA) BroadcastQWord(q uint64) []byte {
	v := make([]byte, i.width)
	for off := 0; off < i.width; off += 8 {
		binary.LittleEndian.PutUint64(v[off:], q)
	}
	return v
}

func (i ISA) XOR(a, b []byte) []byte {
	v := make([]byte, i.width)
	for j := range v {
		v[j] = a[j] ^ b[j]
	}
	return v
}

func (i ISA) ShiftLeftQWord(v []byte, count uint) []byte {
	return i.shiftLanes(v, 8, func(x uint64) uint64 { return x << count },
		func(b []byte) uint64 { return binary.LittleEndian.Uint64(b) },
		func(b []byte, x uint64) { binary.LittleEndian.PutUint64(b, x) })
}

func (i ISA) ShiftRightQWord(v []byte, count uint) []byte {
	return i.shiftLanes(v, 8, func(x uint64) uint64 { return x >> count },
		func(b []byte) uint64 { return binary.LittleEndian.Uint64(b) },
		func(b []byte, x uint64) { binary.LittleEndian.PutUint64(b, x) })
}

func (i ISA) ShiftLeftDWord(v []byte, count uint) []byte {
	return i.shiftLanes32(v, func(x uint32) uint32 { return x << count })
}

func (i ISA) ShiftRightDWord(v []byte, count uint) []byte {
	return i.shiftLanes32(v, func(x uint32) uint32 { return x >> count })
}

func (i ISA) ShiftLeftWord(v []byte, count uint) []byte {
	return i.shiftLanes16(v, func(x uint16) uint16 { return x << count })
}

func (i ISA) ShiftRightWord(v []byte, count uint) []byte {
	return i.shiftLanes16(v, func(x uint16) uint16 { return x >> count })
}

func (i ISA) ShiftLeftByte(v []byte, count uint) []byte {
	out := make([]byte, i.width)
	for j, b := range v {
		out[j] = b << count
	}
	return out
}

func (i ISA) ShiftRightByte(v []byte, count uint) []byte {
	out := make([]byte, i.width)
	for j, b := range v {
		out[j] = b >> count
	}
	return out
}

func (i ISA) LaneIndexQWords() []byte {
	v := make([]byte, i.width)
	for lane := 0; lane < i.width/8; lane++ {
		binary.LittleEndian.PutUint64(v[lane*8:], uint64(lane*8))
	}
	return v
}

func (i ISA) Fence() {}

func (i ISA) ReportLine(absOff int, report asm.VerifyReport) string {
	return fmt.Sprintf("%d errors detected at offset 0x%016x", report.MismatchedBytes, uint64(absOff))
}

func (i ISA) shiftLanes(v []byte, laneBytes int, op func(uint64) uint64, get func([]byte) uint64, put func([]byte, uint64)) []byte {
	out := make([]byte, i.width)
	for off := 0; off < i.width; off += laneBytes {
		put(out[off:], op(get(v[off:])))
	}
	return out
}

func (i ISA) shiftLanes32(v []byte, op func(uint32) uint32) []byte {
	out := make([]byte, i.width)
	for off := 0; off < i.width; off += 4 {
		binary.LittleEndian.PutUint32(out[off:], op(binary.LittleEndian.Uint32(v[off:])))
	}
	return out
}

func (i ISA) shiftLanes16(v []byte, op func(uint16) uint16) []byte {
	out := make([]byte, i.width)
	for off := 0; off < i.width; off += 2 {
		binary.LittleEndian.PutUint16(out[off:], op(binary.LittleEndian.Uint16(v[off:])))
	}
	return out
}


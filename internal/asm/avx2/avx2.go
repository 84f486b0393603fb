//go:build amd64

// Package avx2 implements internal/asm.ISA for 256-bit (32-byte) AVX2
// vectors. Store, Verify, the broadcasts, XOR, the word/dword/qword shifts
// and Fence are thin Go wrappers around Plan9 assembly routines in
// avx2_amd64.s, generated by gen/main.go (avo, guarded by the avogen build
// tag) the same way fastpfor-go checks in both an avo generator and its
// generated output. ShiftLeftByte, ShiftRightByte, LaneIndexQWords and
// ReportLine are plain Go.
package avx2

import (
	"encoding/binary"
	"fmt"

	"github.com/Gunzinger/manganese/internal/asm"
)

// VectorBytes is the AVX2 lane width (§3 "Vector").
const VectorBytes = asm.AVX2VectorBytes

// ISA is the AVX2 backend. It carries no state; every method is a pure
// wrapper over the assembly primitives.
type ISA struct{}

var _ asm.ISA = ISA{}

func (ISA) Width() int { return VectorBytes }

//go:noescape
func storeNT(dst *byte, v *byte)

// Store issues a non-temporal, 32-byte-aligned store of v into
// buf[off:off+32] (§4.B.1). Both buf[off:] and v must be 32-byte aligned;
// the block iterator (§4.A) guarantees the buffer offset, and pattern
// generators always return freshly allocated 32-byte-aligned vectors.
func (ISA) Store(buf []byte, off int, v []byte) {
	storeNT(&buf[off], &v[0])
}

//go:noescape
func verify(actual *byte, expected *byte) (mismatched uint64, mask uint64)

// Verify aligned-loads buf[off:off+32], compares it byte-wise against
// expected, and returns the exact mismatched-byte count (§9: the AVX2 path
// must count real bytes, not "1 per vector").
func (ISA) Verify(buf []byte, off int, expected []byte) asm.VerifyReport {
	n, mask := verify(&buf[off], &expected[0])
	return asm.VerifyReport{MismatchedBytes: int(n), Mask: mask, Ok: n == 0}
}

//go:noescape
func broadcastByte(b byte, dst *byte)

func (ISA) BroadcastByte(b byte) []byte {
	v := newVector()
	broadcastByte(b, &v[0])
	return v
}

//go:noescape
func broadcastWord(w uint16, dst *byte)

func (ISA) BroadcastWord(w uint16) []byte {
	v := newVector()
	broadcastWord(w, &v[0])
	return v
}

//go:noescape
func broadcastDWord(d uint32, dst *byte)

func (ISA) BroadcastDWord(d uint32) []byte {
	v := newVector()
	broadcastDWord(d, &v[0])
	return v
}

//go:noescape
func broadcastQWord(q uint64, dst *byte)

func (ISA) BroadcastQWord(q uint64) []byte {
	v := newVector()
	broadcastQWord(q, &v[0])
	return v
}

//go:noescape
func xorVec(a, b, dst *byte)

func (ISA) XOR(a, b []byte) []byte {
	v := newVector()
	xorVec(&a[0], &b[0], &v[0])
	return v
}

//go:noescape
func shiftLeftQWord(src *byte, count uint64, dst *byte)

func (ISA) ShiftLeftQWord(v []byte, count uint) []byte {
	out := newVector()
	shiftLeftQWord(&v[0], uint64(count), &out[0])
	return out
}

//go:noescape
func shiftRightQWord(src *byte, count uint64, dst *byte)

func (ISA) ShiftRightQWord(v []byte, count uint) []byte {
	out := newVector()
	shiftRightQWord(&v[0], uint64(count), &out[0])
	return out
}

//go:noescape
func shiftLeftDWord(src *byte, count uint64, dst *byte)

func (ISA) ShiftLeftDWord(v []byte, count uint) []byte {
	out := newVector()
	shiftLeftDWord(&v[0], uint64(count), &out[0])
	return out
}

//go:noescape
func shiftRightDWord(src *byte, count uint64, dst *byte)

func (ISA) ShiftRightDWord(v []byte, count uint) []byte {
	out := newVector()
	shiftRightDWord(&v[0], uint64(count), &out[0])
	return out
}

//go:noescape
func shiftLeftWord(src *byte, count uint64, dst *byte)

func (ISA) ShiftLeftWord(v []byte, count uint) []byte {
	out := newVector()
	shiftLeftWord(&v[0], uint64(count), &out[0])
	return out
}

//go:noescape
func shiftRightWord(src *byte, count uint64, dst *byte)

func (ISA) ShiftRightWord(v []byte, count uint) []byte {
	out := newVector()
	shiftRightWord(&v[0], uint64(count), &out[0])
	return out
}

// ShiftLeftByte shifts every 8-bit lane of v left by count bits. x86 has
// no native byte-lane SIMD shift instruction, so this lowers to a 16-bit
// lane shift (shiftLeftWord) followed by masking off bits carried in from
// the neighboring byte (§9 decision 2) — done here in Go rather than in
// assembly since it is only ever called with count in [0,4) by the
// moving-inversions-left-4 variant and the mask is cheap to build once.
func (ISA) ShiftLeftByte(v []byte, count uint) []byte {
	shifted := ISA{}.ShiftLeftWord(v, count)
	keep := byte(0xFF << count)
	out := newVector()
	for i := range out {
		out[i] = shifted[i] & keep
	}
	return out
}

// ShiftRightByte is the mirror of ShiftLeftByte: a 16-bit lane shift right
// followed by a mask that strips the high bits contaminated from the
// neighboring byte (§9 decision 2).
func (ISA) ShiftRightByte(v []byte, count uint) []byte {
	shifted := ISA{}.ShiftRightWord(v, count)
	keep := byte(0xFF >> count)
	out := newVector()
	for i := range out {
		out[i] = shifted[i] & keep
	}
	return out
}

func (ISA) LaneIndexQWords() []byte {
	v := newVector()
	for lane := 0; lane < VectorBytes/8; lane++ {
		binary.LittleEndian.PutUint64(v[lane*8:], uint64(lane*8))
	}
	return v
}

// newVector returns a 32-byte-aligned, zeroed vector buffer.
func newVector() []byte {
	return asm.AlignSlice(VectorBytes)
}

//go:noescape
func sfence()

// Fence issues an SFENCE, the store-fence the block iterator requires at
// the end of every sweep (§5).
func (ISA) Fence() { sfence() }

// ReportLine formats the AVX2 stderr line (§6): "errors detected at
// offset 0x<16-hex-offset>" -- no count or mask, matching the spec's
// AVX2 wire format exactly.
func (ISA) ReportLine(absOff int, report asm.VerifyReport) string {
	return fmt.Sprintf("errors detected at offset 0x%016x", uint64(absOff))
}

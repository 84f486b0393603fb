//go:build amd64

// Package avx512 implements internal/asm.ISA for 512-bit (64-byte)
// AVX-512F+BW vectors. Mirrors package avx2's structure; the behavioral
// differences visible to callers are Width(), ReportLine's format (which
// adds the mismatch count and mask), and the fact that Verify's mask comes
// from a genuine AVX-512 mask register rather than a simulated PMOVMSKB
// bitmap.
package avx512

import (
	"encoding/binary"
	"fmt"

	"github.com/Gunzinger/manganese/internal/asm"
)

// VectorBytes is the AVX-512 lane width (§3 "Vector").
const VectorBytes = asm.AVX512VectorBytes

// ISA is the AVX-512F+BW backend. It carries no state.
type ISA struct{}

var _ asm.ISA = ISA{}

func (ISA) Width() int { return VectorBytes }

//go:noescape
func storeNT(dst *byte, v *byte)

// Store issues a non-temporal, 64-byte-aligned store of v into
// buf[off:off+64] (§4.B.1).
func (ISA) Store(buf []byte, off int, v []byte) {
	storeNT(&buf[off], &v[0])
}

//go:noescape
func verify(actual *byte, expected *byte) (mismatched uint64, mask uint64)

// Verify aligned-loads buf[off:off+64], compares byte-wise against
// expected using a 64-lane mask register, and pops it directly -- the
// mask IS the byte count here, no simulation needed (§9).
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

// ShiftLeftByte: same word-shift-plus-mask emulation as the AVX2 backend
// (§9 decision 2); AVX-512BW still has no byte-lane shift instruction.
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

func newVector() []byte {
	return asm.AlignSlice(VectorBytes)
}

//go:noescape
func sfence()

// Fence issues an SFENCE, the store-fence the block iterator requires at
// the end of every sweep (§5).
func (ISA) Fence() { sfence() }

// ReportLine formats the AVX-512 stderr line (§6): "<n> errors detected
// at offset 0x<16-hex-offset> [error mask: 0x<16-hex-mask>]".
func (ISA) ReportLine(absOff int, report asm.VerifyReport) string {
	return fmt.Sprintf("%d errors detected at offset 0x%016x [error mask: 0x%016x]", report.MismatchedBytes, uint64(absOff), report.Mask)
}

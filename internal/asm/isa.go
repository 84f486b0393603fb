// Package asm defines the lane-width SIMD primitive contract (§4.B) shared
// by the AVX2 and AVX-512 backends. The engine depends only on the ISA
// interface; avx2 and avx512 provide the two concrete implementations
// selected at startup by internal/platform's feature detection.
package asm

import "unsafe"

// VectorBytes values the two supported backends report from ISA.Width.
const (
	AVX2VectorBytes   = 32
	AVX512VectorBytes = 64
)

// VerifyReport is the outcome of one Verify call: the number of mismatched
// bytes to add to the shared error counter (§8 property 4) plus the raw
// per-byte inequality mask used for the stderr report line (§6).
type VerifyReport struct {
	// MismatchedBytes is the popcount of bytes in the compared vector that
	// differed from the expected pattern. This must be an exact byte count,
	// never "1 per vector" regardless of how many lanes differ (§9).
	MismatchedBytes int
	// Mask is the per-byte inequality mask: bit i set means byte i at the
	// compared offset differed from the expected pattern.
	Mask uint64
	// Ok is true when MismatchedBytes == 0.
	Ok bool
}

// ISA is the lane-width primitive set a test routine is written against.
// Every method operates on one vector at one aligned offset into a byte
// buffer; ISA implementations never see the whole buffer, only the slice
// handed to them by the block iterator for the current chunk.
type ISA interface {
	// Width reports the vector width in bytes: 32 for AVX2, 64 for AVX-512.
	Width() int

	// Store issues a non-temporal, alignment-required store of v to
	// buf[off:off+Width()]. v must be exactly Width() bytes.
	Store(buf []byte, off int, v []byte)

	// Verify aligned-loads buf[off:off+Width()] and compares it byte-wise
	// against expected, reporting the exact mismatched-byte count and mask.
	// expected must be exactly Width() bytes.
	Verify(buf []byte, off int, expected []byte) VerifyReport

	// BroadcastByte returns a Width()-byte vector with b in every byte lane.
	BroadcastByte(b byte) []byte
	// BroadcastWord returns a Width()-byte vector with w in every 16-bit lane.
	BroadcastWord(w uint16) []byte
	// BroadcastDWord returns a Width()-byte vector with d in every 32-bit lane.
	BroadcastDWord(d uint32) []byte
	// BroadcastQWord returns a Width()-byte vector with q in every 64-bit lane.
	BroadcastQWord(q uint64) []byte

	// XOR returns the element-wise XOR of a and b, both Width() bytes.
	XOR(a, b []byte) []byte

	// ShiftLeftQWord/ShiftRightQWord shift every 64-bit lane of v left/right
	// by count bits (count in [0,64)), via the register-count form of
	// VPSLLQ/VPSRLQ — no compile-time immediate required (§9).
	ShiftLeftQWord(v []byte, count uint) []byte
	ShiftRightQWord(v []byte, count uint) []byte
	// ShiftLeftDWord/ShiftRightDWord: same, 32-bit lanes, count in [0,32).
	ShiftLeftDWord(v []byte, count uint) []byte
	ShiftRightDWord(v []byte, count uint) []byte
	// ShiftLeftWord/ShiftRightWord: same, 16-bit lanes, count in [0,16).
	ShiftLeftWord(v []byte, count uint) []byte
	ShiftRightWord(v []byte, count uint) []byte

	// ShiftLeftByte/ShiftRightByte shift every 8-bit lane of v left/right by
	// count bits (count in [0,8)). x86 has no native byte-granularity SIMD
	// shift; both are emulated with a word-lane shift plus a mask that
	// strips bits carried in from the neighboring byte (§9 decision 2).
	ShiftLeftByte(v []byte, count uint) []byte
	ShiftRightByte(v []byte, count uint) []byte

	// LaneIndexQWords returns a Width()-byte vector whose 64-bit lanes hold
	// 0, 8, 16, ... (the byte offset of each lane within the vector),
	// used by the addressing test (§4.D) to give every lane a unique word.
	LaneIndexQWords() []byte

	// Fence issues a store-fence, making every non-temporal store issued
	// by this worker so far globally visible. The block iterator calls
	// this once per worker before departing a sweep's join barrier (§5
	// "every non-temporal write issued in the sweep must be globally
	// visible before the next sweep begins").
	Fence()

	// ReportLine formats the one stderr line a verify mismatch at absOff
	// produces (§6 Outputs). The two backends use different wire formats:
	// the AVX2 line carries only the offset, the AVX-512 line also carries
	// the mismatch count and the per-byte mask.
	ReportLine(absOff int, report VerifyReport) string
}

// AlignSlice returns a zeroed slice of exactly width bytes, over-allocated
// and re-sliced so its backing array starts at a width-aligned address.
// width must be a power of two. Used by both backends to hand aligned
// scratch vectors to the assembly primitives, which require it.
func AlignSlice(width int) []byte {
	buf := make([]byte, width+width-1)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	pad := (-addr) & uintptr(width-1)
	return buf[pad : pad+uintptr(width) : pad+uintptr(width)]
}


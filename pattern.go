package manganese

import "encoding/binary"

// Patterns is the set of deterministic, pure pattern-generator functions
// (§4.C) a test routine draws vectors from, bound to one Engine's ISA so
// every vector it returns is the right width. Generation never performs
// I/O; the only side effect anywhere in this file is the RNG state
// advance inside Random, which the spec requires happen only outside
// parallel sweeps (§4.E).
type Patterns struct {
	e *Engine
}

// NewPatterns returns a Patterns generator bound to e's ISA.
func NewPatterns(e *Engine) Patterns { return Patterns{e: e} }

// ConstantByte broadcasts b across every byte lane (§4.C "constant-byte").
func (p Patterns) ConstantByte(b byte) []byte { return p.e.ISA().BroadcastByte(b) }

// WalkingOne broadcasts 1<<bit across 64-bit lanes (§4.C "walking-one").
// bit must be in [0, 64).
func (p Patterns) WalkingOne(bit int) []byte {
	return p.e.ISA().BroadcastQWord(uint64(1) << uint(bit))
}

// WalkingZero broadcasts ^(1<<bit) across 64-bit lanes (§4.C
// "walking-zero"). bit must be in [0, 64).
func (p Patterns) WalkingZero(bit int) []byte {
	return p.e.ISA().BroadcastQWord(^(uint64(1) << uint(bit)))
}

// ShiftDir selects the direction a shifted pattern moves in.
type ShiftDir int

const (
	ShiftLeft ShiftDir = iota
	ShiftRight
)

// LaneWidth names the lane granularity a moving-inversions variant walks
// its pattern through (§4.C "shifted").
type LaneWidth int

const (
	Lane64 LaneWidth = iota
	Lane32
	Lane16
	Lane8
)

// Shifted shifts initial by i bit positions within the given lane width
// and direction (§4.C "shifted"). For Lane8 both directions lower to the
// word-shift-plus-mask emulation described in §9 decision 2.
func (p Patterns) Shifted(initial []byte, i int, lane LaneWidth, dir ShiftDir) []byte {
	isa := p.e.ISA()
	switch lane {
	case Lane64:
		if dir == ShiftLeft {
			return isa.ShiftLeftQWord(initial, uint(i))
		}
		return isa.ShiftRightQWord(initial, uint(i))
	case Lane32:
		if dir == ShiftLeft {
			return isa.ShiftLeftDWord(initial, uint(i))
		}
		return isa.ShiftRightDWord(initial, uint(i))
	case Lane16:
		if dir == ShiftLeft {
			return isa.ShiftLeftWord(initial, uint(i))
		}
		return isa.ShiftRightWord(initial, uint(i))
	case Lane8:
		if dir == ShiftLeft {
			return isa.ShiftLeftByte(initial, uint(i))
		}
		return isa.ShiftRightByte(initial, uint(i))
	}
	panic("manganese: unknown lane width")
}

// Saturation returns the base 16-bit-lane saturation pattern (0x8000 or
// 0x0001) shifted i times (§4.C "saturation").
func (p Patterns) Saturation(base uint16, i int, dir ShiftDir) []byte {
	isa := p.e.ISA()
	v := isa.BroadcastWord(base)
	if dir == ShiftLeft {
		return isa.ShiftLeftWord(v, uint(i))
	}
	return isa.ShiftRightWord(v, uint(i))
}

// AddressDerived broadcasts off (as a 64-bit value) across every lane,
// optionally XORed with off<<shift (§4.C "address-derived"). shift == 0
// means no XOR term is applied.
func (p Patterns) AddressDerived(off int, shift uint) []byte {
	isa := p.e.ISA()
	base := isa.BroadcastQWord(uint64(off))
	if shift == 0 {
		return base
	}
	shiftedOff := uint64(off) << shift
	return isa.XOR(base, isa.BroadcastQWord(shiftedOff))
}

// AddressPlusLaneIndex returns broadcast64(off) with each 64-bit lane
// additionally offset by its lane index in 8-byte steps (0, 8, 16, ...),
// used by the addressing test (§4.D) to give every lane a unique word.
func (p Patterns) AddressPlusLaneIndex(off int) []byte {
	isa := p.e.ISA()
	base := isa.BroadcastQWord(uint64(off))
	lanes := isa.LaneIndexQWords()
	out := make([]byte, isa.Width())
	for lane := 0; lane < isa.Width()/8; lane++ {
		b := binary.LittleEndian.Uint64(base[lane*8:])
		l := binary.LittleEndian.Uint64(lanes[lane*8:])
		binary.LittleEndian.PutUint64(out[lane*8:], b+l)
	}
	return out
}

// Random draws one vector from the engine's RNG (§4.C "random"). Must
// only be called from single-threaded pattern setup, never from inside a
// parallel sweep (§4.E).
func (p Patterns) Random() []byte { return p.e.rng.next() }

// Anti returns pattern XORed with all-ones (§4.C "anti").
func (p Patterns) Anti(pattern []byte) []byte {
	isa := p.e.ISA()
	ones := isa.BroadcastByte(0xFF)
	return isa.XOR(pattern, ones)
}

package manganese

// writeConstant issues one sweep in dir storing pattern at every offset
// (§4.D "write-UP"/"write-DOWN" of a fixed pattern).
func (e *Engine) writeConstant(buf *Buffer, dir Direction, pattern []byte) {
	Sweep(e, buf, dir, func(chunk []byte, off, absOff int) {
		e.isa.Store(chunk, off, pattern)
	})
}

// readConstant issues one sweep in dir verifying every offset against
// expected (§4.D "read-UP"/"read-DOWN" of a fixed pattern).
func (e *Engine) readConstant(buf *Buffer, dir Direction, expected []byte) {
	Sweep(e, buf, dir, func(chunk []byte, off, absOff int) {
		e.verifyAndReport(chunk, off, absOff, expected)
	})
}

// writeDerived issues one sweep in dir storing gen(absOff) at every offset
// (§4.C "address-derived" patterns such as addressing, checkerboard, and
// address-line, where the value depends on absolute buffer position).
func (e *Engine) writeDerived(buf *Buffer, dir Direction, gen func(absOff int) []byte) {
	Sweep(e, buf, dir, func(chunk []byte, off, absOff int) {
		e.isa.Store(chunk, off, gen(absOff))
	})
}

// readDerived issues one sweep in dir verifying every offset against
// gen(absOff).
func (e *Engine) readDerived(buf *Buffer, dir Direction, gen func(absOff int) []byte) {
	Sweep(e, buf, dir, func(chunk []byte, off, absOff int) {
		e.verifyAndReport(chunk, off, absOff, gen(absOff))
	})
}

// Basic runs the basic test routine (§4.D): for each byte pattern in
// {0x00, 0xFF, 0x0F, 0xF0, 0x55, 0xAA}, write-UP, read-UP, write-DOWN,
// read-DOWN.
func (e *Engine) Basic(buf *Buffer) {
	p := NewPatterns(e)
	for _, b := range [...]byte{0x00, 0xFF, 0x0F, 0xF0, 0x55, 0xAA} {
		v := p.ConstantByte(b)
		e.writeConstant(buf, Up, v)
		e.readConstant(buf, Up, v)
		e.writeConstant(buf, Down, v)
		e.readConstant(buf, Down, v)
	}
}

// March runs the march test routine (§4.D): two outer repetitions, each
// composed of a DOWN write of zeros followed by four sweeps whose
// per-offset script mixes reads and writes in a fixed order. The script at
// each offset runs inside a single Sweep callback so the sequence of
// operations at that offset is exactly the order the routine's schedule
// specifies, not four independent sweeps.
func (e *Engine) March(buf *Buffer) {
	p := NewPatterns(e)
	zero := p.ConstantByte(0x00)
	ones := p.ConstantByte(0xFF)

	for rep := 0; rep < 2; rep++ {
		e.writeConstant(buf, Down, zero)

		Sweep(e, buf, Up, func(chunk []byte, off, absOff int) {
			e.verifyAndReport(chunk, off, absOff, zero)
			e.isa.Store(chunk, off, ones)
			e.verifyAndReport(chunk, off, absOff, ones)
			e.isa.Store(chunk, off, zero)
			e.verifyAndReport(chunk, off, absOff, zero)
			e.isa.Store(chunk, off, ones)
		})

		Sweep(e, buf, Up, func(chunk []byte, off, absOff int) {
			e.verifyAndReport(chunk, off, absOff, ones)
			e.isa.Store(chunk, off, zero)
			e.isa.Store(chunk, off, ones)
		})

		Sweep(e, buf, Down, func(chunk []byte, off, absOff int) {
			e.verifyAndReport(chunk, off, absOff, ones)
			e.isa.Store(chunk, off, zero)
			e.isa.Store(chunk, off, ones)
			e.isa.Store(chunk, off, zero)
		})

		Sweep(e, buf, Down, func(chunk []byte, off, absOff int) {
			e.verifyAndReport(chunk, off, absOff, zero)
			e.isa.Store(chunk, off, ones)
			e.isa.Store(chunk, off, zero)
		})
	}
}

// RandomInversions runs the random-inversions test routine (§4.D): 16
// iterations, each drawing a fresh random pattern from the engine's RNG
// (single-threaded, between sweeps per §4.E) and writing/reading it and
// its complement.
func (e *Engine) RandomInversions(buf *Buffer) {
	p := NewPatterns(e)
	for i := 0; i < 16; i++ {
		pattern := p.Random()
		anti := p.Anti(pattern)
		e.writeConstant(buf, Up, pattern)
		e.readConstant(buf, Up, pattern)
		e.writeConstant(buf, Up, anti)
		e.readConstant(buf, Up, anti)
	}
}

// movingInversions runs one moving-inversions variant (§4.D): iterations
// steps over shift i in [0, iterations), each deriving p = shift(initial,
// i) in the given lane width and direction, then writing/reading p and its
// complement.
func (e *Engine) movingInversions(buf *Buffer, iterations int, lane LaneWidth, dir ShiftDir, initial []byte) {
	p := NewPatterns(e)
	for i := 0; i < iterations; i++ {
		pattern := p.Shifted(initial, i, lane, dir)
		anti := p.Anti(pattern)
		e.writeConstant(buf, Up, pattern)
		e.readConstant(buf, Up, pattern)
		e.writeConstant(buf, Up, anti)
		e.readConstant(buf, Up, anti)
	}
}

// MovingInversionsLeft64 is the left-64 moving-inversions variant (§4.D):
// initial 0x1 in 64-bit lanes, shifted left, 64 iterations.
func (e *Engine) MovingInversionsLeft64(buf *Buffer) {
	e.movingInversions(buf, 64, Lane64, ShiftLeft, e.isa.BroadcastQWord(0x1))
}

// MovingInversionsRight32 is the right-32 moving-inversions variant
// (§4.D): initial 0x80000000 in 32-bit lanes, shifted right, 32 iterations.
func (e *Engine) MovingInversionsRight32(buf *Buffer) {
	e.movingInversions(buf, 32, Lane32, ShiftRight, e.isa.BroadcastDWord(0x80000000))
}

// MovingInversionsLeft16 is the left-16 moving-inversions variant (§4.D):
// initial 0x0001 in 16-bit lanes, shifted left, 16 iterations.
func (e *Engine) MovingInversionsLeft16(buf *Buffer) {
	e.movingInversions(buf, 16, Lane16, ShiftLeft, e.isa.BroadcastWord(0x0001))
}

// MovingInversionsRight8 is the right-8 moving-inversions variant (§4.D):
// initial 0x80 in 8-bit lanes, shifted right, 8 iterations.
func (e *Engine) MovingInversionsRight8(buf *Buffer) {
	e.movingInversions(buf, 8, Lane8, ShiftRight, e.isa.BroadcastByte(0x80))
}

// MovingInversionsLeft4 is the left-4 moving-inversions variant (§4.D):
// initial 0x11 in 8-bit lanes, shifted left, 4 iterations (§9 "the
// observable effect -- pattern walks within 8-bit lanes 4 times").
func (e *Engine) MovingInversionsLeft4(buf *Buffer) {
	e.movingInversions(buf, 4, Lane8, ShiftLeft, e.isa.BroadcastByte(0x11))
}

// movingSaturations runs one moving-saturations variant (§4.D): iterations
// steps over shift i, each writing the current saturation pattern, reading
// it, writing all-zeros, reading zeros, writing the pattern again, reading
// it, writing all-ones, reading ones -- maximizing 0->1/1->0 transitions
// per cell.
func (e *Engine) movingSaturations(buf *Buffer, iterations int, base uint16, dir ShiftDir) {
	p := NewPatterns(e)
	zero := p.ConstantByte(0x00)
	ones := p.ConstantByte(0xFF)
	for i := 0; i < iterations; i++ {
		pattern := p.Saturation(base, i, dir)
		e.writeConstant(buf, Up, pattern)
		e.readConstant(buf, Up, pattern)
		e.writeConstant(buf, Up, zero)
		e.readConstant(buf, Up, zero)
		e.writeConstant(buf, Up, pattern)
		e.readConstant(buf, Up, pattern)
		e.writeConstant(buf, Up, ones)
		e.readConstant(buf, Up, ones)
	}
}

// MovingSaturations16 is the 16-iteration moving-saturations variant
// (§4.D), walking 0x8000 left through the 16-bit lanes.
func (e *Engine) MovingSaturations16(buf *Buffer) {
	e.movingSaturations(buf, 16, 0x8000, ShiftLeft)
}

// MovingSaturations8 is the 8-iteration moving-saturations variant (§4.D),
// walking 0x0001 right through the 16-bit lanes.
func (e *Engine) MovingSaturations8(buf *Buffer) {
	e.movingSaturations(buf, 8, 0x0001, ShiftRight)
}

// Addressing runs the addressing test routine (§4.D): 16 repetitions, each
// doing UP-write, UP-read, DOWN-write, DOWN-read of
// broadcast64(off)+lane_index_vector, giving every lane a unique 64-bit
// word derived from its absolute buffer offset.
func (e *Engine) Addressing(buf *Buffer) {
	p := NewPatterns(e)
	gen := func(absOff int) []byte { return p.AddressPlusLaneIndex(absOff) }
	for i := 0; i < 16; i++ {
		e.writeDerived(buf, Up, gen)
		e.readDerived(buf, Up, gen)
		e.writeDerived(buf, Down, gen)
		e.readDerived(buf, Down, gen)
	}
}

// walkingBit runs the walking-1/walking-0 test routines (§4.D): for bit in
// [0, 64), write-UP+read-UP of the walking pattern, then of its inverse.
func (e *Engine) walkingBit(buf *Buffer, makePattern func(Patterns, int) []byte) {
	p := NewPatterns(e)
	for bit := 0; bit < 64; bit++ {
		pattern := makePattern(p, bit)
		anti := p.Anti(pattern)
		e.writeConstant(buf, Up, pattern)
		e.readConstant(buf, Up, pattern)
		e.writeConstant(buf, Up, anti)
		e.readConstant(buf, Up, anti)
	}
}

// Walking1 runs the walking-1 test routine (§4.D).
func (e *Engine) Walking1(buf *Buffer) {
	e.walkingBit(buf, func(p Patterns, bit int) []byte { return p.WalkingOne(bit) })
}

// Walking0 runs the walking-0 test routine (§4.D).
func (e *Engine) Walking0(buf *Buffer) {
	e.walkingBit(buf, func(p Patterns, bit int) []byte { return p.WalkingZero(bit) })
}

// Checkerboard runs the checkerboard test routine (§4.D): write-UP 0xAA on
// even-indexed vectors and 0x55 on odd, read-UP to verify, then repeat
// with the patterns swapped. Parity is (off / VECTOR_BYTES) & 1.
func (e *Engine) Checkerboard(buf *Buffer) {
	p := NewPatterns(e)
	aa := p.ConstantByte(0xAA)
	fifty5 := p.ConstantByte(0x55)
	vectorSize := buf.VectorSize()

	gen := func(even, odd []byte) func(int) []byte {
		return func(absOff int) []byte {
			if (absOff/vectorSize)&1 == 0 {
				return even
			}
			return odd
		}
	}

	e.writeDerived(buf, Up, gen(aa, fifty5))
	e.readDerived(buf, Up, gen(aa, fifty5))
	e.writeDerived(buf, Up, gen(fifty5, aa))
	e.readDerived(buf, Up, gen(fifty5, aa))
}

// AddressLine runs the address-line test routine (§4.D): (i) write-UP/
// read-UP of broadcast64(off); (ii) write-DOWN/read-DOWN of
// broadcast64(~off); (iii) for shift in {1,2,4,8,16}: write-UP/read-UP of
// broadcast64(off ^ (off << shift)).
func (e *Engine) AddressLine(buf *Buffer) {
	p := NewPatterns(e)

	plain := func(absOff int) []byte { return p.AddressDerived(absOff, 0) }
	e.writeDerived(buf, Up, plain)
	e.readDerived(buf, Up, plain)

	inverted := func(absOff int) []byte { return e.isa.XOR(p.AddressDerived(absOff, 0), e.isa.BroadcastByte(0xFF)) }
	e.writeDerived(buf, Down, inverted)
	e.readDerived(buf, Down, inverted)

	for _, shift := range [...]uint{1, 2, 4, 8, 16} {
		shift := shift
		gen := func(absOff int) []byte { return p.AddressDerived(absOff, shift) }
		e.writeDerived(buf, Up, gen)
		e.readDerived(buf, Up, gen)
	}
}

// antiPatternBytes is the 34-entry table of bytes the anti-patterns test
// walks (§4.D "pairs of complements covering common stuck-bit and
// transition-sensitive encodings"): single-bit-set values (stuck-at-0
// detectors), their complements (stuck-at-1 detectors), and the classic
// alternating/nibble encodings used to stress adjacent-bit coupling.
var antiPatternBytes = [34]byte{
	0x01, 0xFE, 0x02, 0xFD, 0x04, 0xFB, 0x08, 0xF7,
	0x10, 0xEF, 0x20, 0xDF, 0x40, 0xBF, 0x80, 0x7F,
	0x55, 0xAA, 0x33, 0xCC, 0x0F, 0xF0, 0x0C, 0xF3,
	0x03, 0xFC, 0x99, 0x66, 0xC3, 0x3C, 0x69, 0x96,
	0x00, 0xFF,
}

// AntiPatterns runs the anti-patterns test routine (§4.D): for each byte in
// the 34-entry table, write-UP+read-UP of p, then ~p; then the same pair
// in DOWN direction.
func (e *Engine) AntiPatterns(buf *Buffer) {
	p := NewPatterns(e)
	for _, b := range antiPatternBytes {
		pattern := p.ConstantByte(b)
		anti := p.Anti(pattern)

		e.writeConstant(buf, Up, pattern)
		e.readConstant(buf, Up, pattern)
		e.writeConstant(buf, Up, anti)
		e.readConstant(buf, Up, anti)

		e.writeConstant(buf, Down, pattern)
		e.readConstant(buf, Down, pattern)
		e.writeConstant(buf, Down, anti)
		e.readConstant(buf, Down, anti)
	}
}

// zeroedSpan returns a Width()-byte all-ones vector with n bytes starting
// at byte offset start replaced with zero.
func zeroedSpan(width, start, n int) []byte {
	v := make([]byte, width)
	for i := range v {
		v[i] = 0xFF
	}
	for i := start; i < start+n; i++ {
		v[i] = 0x00
	}
	return v
}

// InverseDataPatterns runs the inverse-data-patterns test routine (§4.D):
// an all-ones vector with one byte, then one word, then one dword zeroed,
// walked across every lane position the zeroed span can occupy, each
// pattern immediately followed by its vector inverse.
func (e *Engine) InverseDataPatterns(buf *Buffer) {
	width := e.isa.Width()
	p := NewPatterns(e)

	walk := func(spanBytes int) {
		for start := 0; start+spanBytes <= width; start += spanBytes {
			pattern := zeroedSpan(width, start, spanBytes)
			anti := p.Anti(pattern)
			e.writeConstant(buf, Up, pattern)
			e.readConstant(buf, Up, pattern)
			e.writeConstant(buf, Up, anti)
			e.readConstant(buf, Up, anti)
		}
	}

	walk(1) // one byte zeroed
	walk(2) // one word zeroed
	walk(4) // one dword zeroed
}

// Routine names one test routine a driver loop schedules (§4.D, §4.F).
// Moving-inversions and moving-saturations are each registered as one
// Routine per variant (5 and 2 respectively) rather than grouped, so every
// variant gets its own entry in a pass's reporting.
type Routine struct {
	Name string
	Run  func(e *Engine, buf *Buffer)
}

// Routines is the fixed, ordered schedule of test routines a driver loop
// runs every pass (§4.F "repeatedly invoke each test routine").
var Routines = []Routine{
	{"basic", (*Engine).Basic},
	{"march", (*Engine).March},
	{"random-inversions", (*Engine).RandomInversions},
	{"moving-inversions-left-64", (*Engine).MovingInversionsLeft64},
	{"moving-inversions-right-32", (*Engine).MovingInversionsRight32},
	{"moving-inversions-left-16", (*Engine).MovingInversionsLeft16},
	{"moving-inversions-right-8", (*Engine).MovingInversionsRight8},
	{"moving-inversions-left-4", (*Engine).MovingInversionsLeft4},
	{"moving-saturations-16", (*Engine).MovingSaturations16},
	{"moving-saturations-8", (*Engine).MovingSaturations8},
	{"addressing", (*Engine).Addressing},
	{"walking-1", (*Engine).Walking1},
	{"walking-0", (*Engine).Walking0},
	{"checkerboard", (*Engine).Checkerboard},
	{"address-line", (*Engine).AddressLine},
	{"anti-patterns", (*Engine).AntiPatterns},
	{"inverse-data-patterns", (*Engine).InverseDataPatterns},
}

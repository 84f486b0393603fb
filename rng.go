package manganese

import (
	"encoding/binary"

	"github.com/Gunzinger/manganese/internal/asm"
)

// laneState is one lane's xorshift128+ state (§4.E "each lane keeps its
// own s0, s1 state").
type laneState struct {
	s0, s1 uint64
}

// RNG is the lane-parallel xorshift128+ generator described in §4.E: the
// scalar xorshift128+ recurrence run independently per lane, producing a
// full vector per call to next. It is not safe for concurrent use — the
// engine only ever advances it from single-threaded pattern setup code
// between parallel sweeps (§3 "RNG").
type RNG struct {
	width int
	lanes []laneState
}

func newRNG(isa asm.ISA) *RNG {
	return &RNG{width: isa.Width(), lanes: make([]laneState, isa.Width()/8)}
}

// seed seeds every lane from two non-zero 64-bit values drawn via
// drawEntropy (§4.E), re-drawing the pair while both words come back
// zero. Each lane's starting state is derived from the drawn pair by a
// splitmix64-style perturbation keyed on the lane index, so lanes are
// decorrelated while the whole vector sequence stays fully determined by
// the two drawn words (§8 property 6 "given identical seeds... produces
// the same pattern sequence on every run").
func (r *RNG) seed(drawEntropy func() (uint64, error)) error {
	var a, b uint64
	for {
		x, err := drawEntropy()
		if err != nil {
			return err
		}
		y, err := drawEntropy()
		if err != nil {
			return err
		}
		if x != 0 || y != 0 {
			a, b = x, y
			break
		}
	}
	for i := range r.lanes {
		s0 := splitmix64(a + uint64(i)*0x9E3779B97F4A7C15)
		s1 := splitmix64(b + uint64(i)*0xBF58476D1CE4E5B9)
		if s0 == 0 && s1 == 0 {
			s1 = 1 // xorshift128+ requires non-zero state
		}
		r.lanes[i] = laneState{s0: s0, s1: s1}
	}
	return nil
}

// next advances every lane's xorshift128+ state by one step and returns
// the resulting vector, low lane first (§4.C "random").
func (r *RNG) next() []byte {
	out := make([]byte, r.width)
	for i := range r.lanes {
		s1, s0 := r.lanes[i].s0, r.lanes[i].s1
		result := s0 + s1
		r.lanes[i].s0 = s0
		s1 ^= s1 << 23
		r.lanes[i].s1 = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)
		binary.LittleEndian.PutUint64(out[i*8:], result)
	}
	return out
}

// splitmix64 is the standard SplitMix64 mixing function, used only to
// decorrelate per-lane seeds from the two drawn entropy words above.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x ^= x >> 31
	return x
}

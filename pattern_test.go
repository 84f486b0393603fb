package manganese

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatternsConstantByte(t *testing.T) {
	e := newTestEngine(32, 1)
	p := NewPatterns(e)
	v := p.ConstantByte(0xAA)
	require.Equal(t, 32, len(v))
	for _, b := range v {
		require.Equal(t, byte(0xAA), b)
	}
}

func TestPatternsWalkingOneZero(t *testing.T) {
	e := newTestEngine(32, 1)
	p := NewPatterns(e)

	one := p.WalkingOne(3)
	require.Equal(t, uint64(1)<<3, binary.LittleEndian.Uint64(one))

	zero := p.WalkingZero(3)
	require.Equal(t, ^(uint64(1) << 3), binary.LittleEndian.Uint64(zero))
}

func TestPatternsAntiIsInvolution(t *testing.T) {
	e := newTestEngine(32, 1)
	p := NewPatterns(e)
	original := p.ConstantByte(0x3C)
	require.Equal(t, original, p.Anti(p.Anti(original)))
}

func TestPatternsShiftedDeterministicAcrossWidths(t *testing.T) {
	// Shift determinism (§8 property 5): the same initial pattern and shift
	// parameters must produce the same vector sequence independent of
	// vector width/thread count, when compared lane-for-lane.
	e32 := newTestEngine(32, 1)
	e64 := newTestEngine(64, 1)

	initial32 := e32.ISA().BroadcastQWord(0x1)
	initial64 := e64.ISA().BroadcastQWord(0x1)

	for i := 0; i < 10; i++ {
		shifted32 := NewPatterns(e32).Shifted(initial32, i, Lane64, ShiftLeft)
		shifted64 := NewPatterns(e64).Shifted(initial64, i, Lane64, ShiftLeft)
		require.Equal(t, binary.LittleEndian.Uint64(shifted32[:8]), binary.LittleEndian.Uint64(shifted64[:8]))
	}
}

func TestPatternsShiftedLane8RightWalksHighBit(t *testing.T) {
	e := newTestEngine(32, 1)
	p := NewPatterns(e)
	initial := e.ISA().BroadcastByte(0x80)
	for i := uint(0); i < 8; i++ {
		got := p.Shifted(initial, int(i), Lane8, ShiftRight)
		want := byte(0x80) >> i
		for _, b := range got {
			require.Equal(t, want, b)
		}
	}
}

func TestPatternsAddressPlusLaneIndex(t *testing.T) {
	e := newTestEngine(32, 1)
	p := NewPatterns(e)
	v := p.AddressPlusLaneIndex(64)
	for lane := 0; lane < 4; lane++ {
		got := binary.LittleEndian.Uint64(v[lane*8:])
		require.Equal(t, uint64(64+lane*8), got)
	}
}

func TestPatternsRandomUsesEngineRNG(t *testing.T) {
	e := newTestEngine(32, 1)
	var calls int
	err := e.SeedRNG(func() (uint64, error) {
		calls++
		return uint64(calls), nil
	})
	require.NoError(t, err)

	p := NewPatterns(e)
	a := p.Random()
	b := p.Random()
	require.NotEqual(t, a, b)
}

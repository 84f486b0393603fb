//go:build amd64

package avx2

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"

	"github.com/Gunzinger/manganese/internal/asm"
)

func requireAVX2(t *testing.T) {
	if !cpu.X86.HasAVX2 {
		t.Skip("host CPU lacks AVX2")
	}
}

func TestWidth(t *testing.T) {
	require.Equal(t, 32, ISA{}.Width())
}

func TestStoreVerifyRoundTrip(t *testing.T) {
	requireAVX2(t)
	isa := ISA{}
	buf := asm.AlignSlice(64)
	v := isa.BroadcastByte(0x5A)

	isa.Store(buf, 0, v)
	report := isa.Verify(buf, 0, v)
	require.True(t, report.Ok)
	require.Equal(t, 0, report.MismatchedBytes)
}

func TestVerifyCountsExactMismatchedBytes(t *testing.T) {
	requireAVX2(t)
	isa := ISA{}
	buf := asm.AlignSlice(32)
	expected := isa.BroadcastByte(0xFF)
	isa.Store(buf, 0, expected)
	buf[0] = 0x00
	buf[10] = 0x00
	buf[31] = 0x00

	report := isa.Verify(buf, 0, expected)
	require.Equal(t, 3, report.MismatchedBytes)
	require.False(t, report.Ok)
}

func TestXORIsInvolution(t *testing.T) {
	requireAVX2(t)
	isa := ISA{}
	a := isa.BroadcastByte(0x3C)
	ones := isa.BroadcastByte(0xFF)
	anti := isa.XOR(a, ones)
	back := isa.XOR(anti, ones)
	require.Equal(t, a, back)
}

func TestShiftRightByteWalksHighBit(t *testing.T) {
	requireAVX2(t)
	isa := ISA{}
	initial := isa.BroadcastByte(0x80)
	for count := uint(0); count < 8; count++ {
		got := isa.ShiftRightByte(initial, count)
		want := byte(0x80) >> count
		for _, b := range got {
			require.Equal(t, want, b)
		}
	}
}

func TestLaneIndexQWords(t *testing.T) {
	isa := ISA{}
	lanes := isa.LaneIndexQWords()
	require.Equal(t, VectorBytes, len(lanes))
	require.Equal(t, byte(0), lanes[0])
	require.Equal(t, byte(8), lanes[8])
}

func TestReportLineFormat(t *testing.T) {
	requireAVX2(t)
	isa := ISA{}
	buf := asm.AlignSlice(32)
	zero := isa.BroadcastByte(0)
	report := isa.Verify(buf, 0, zero)
	line := isa.ReportLine(0x40, report)
	require.Equal(t, "errors detected at offset 0x0000000000000040", line)
}

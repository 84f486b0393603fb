//go:build amd64

package avx512

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"

	"github.com/Gunzinger/manganese/internal/asm"
)

func requireAVX512(t *testing.T) {
	if !cpu.X86.HasAVX512F || !cpu.X86.HasAVX512BW {
		t.Skip("host CPU lacks AVX-512F+BW")
	}
}

func TestWidth(t *testing.T) {
	require.Equal(t, 64, ISA{}.Width())
}

func TestStoreVerifyRoundTrip(t *testing.T) {
	requireAVX512(t)
	isa := ISA{}
	buf := asm.AlignSlice(64)
	v := isa.BroadcastByte(0x5A)

	isa.Store(buf, 0, v)
	report := isa.Verify(buf, 0, v)
	require.True(t, report.Ok)
	require.Equal(t, 0, report.MismatchedBytes)
}

func TestVerifyCountsExactMismatchedBytesAndMask(t *testing.T) {
	requireAVX512(t)
	isa := ISA{}
	buf := asm.AlignSlice(64)
	expected := isa.BroadcastByte(0xFF)
	isa.Store(buf, 0, expected)
	buf[0] = 0x00
	buf[10] = 0x00
	buf[63] = 0x00

	report := isa.Verify(buf, 0, expected)
	require.Equal(t, 3, report.MismatchedBytes)
	require.False(t, report.Ok)
	require.Equal(t, uint64(1)<<0|uint64(1)<<10|uint64(1)<<63, report.Mask)
}

func TestLaneIndexQWords(t *testing.T) {
	isa := ISA{}
	lanes := isa.LaneIndexQWords()
	require.Equal(t, VectorBytes, len(lanes))
	require.Equal(t, byte(0), lanes[0])
	require.Equal(t, byte(8), lanes[8])
}

func TestReportLineFormat(t *testing.T) {
	requireAVX512(t)
	isa := ISA{}
	buf := asm.AlignSlice(64)
	expected := isa.BroadcastByte(0)
	buf[3] = 0x01
	report := isa.Verify(buf, 0, expected)
	line := isa.ReportLine(0x40, report)
	require.Equal(t, "1 errors detected at offset 0x0000000000000040 [error mask: 0x0000000000000008]", line)
}

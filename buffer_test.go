package manganese

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	t.Run("partitions evenly", func(t *testing.T) {
		raw := make([]byte, 256)
		buf, err := NewBuffer(raw, 2, 32)
		require.NoError(t, err)
		require.Equal(t, 256, buf.Size())
		require.Equal(t, 2, buf.CPUs())
		require.Equal(t, 128, buf.ChunkSize())
		require.Equal(t, 32, buf.VectorSize())
	})

	t.Run("rejects non-positive cpus", func(t *testing.T) {
		_, err := NewBuffer(make([]byte, 64), 0, 32)
		require.Error(t, err)
	})

	t.Run("rejects non-positive vector size", func(t *testing.T) {
		_, err := NewBuffer(make([]byte, 64), 2, 0)
		require.Error(t, err)
	})

	t.Run("rejects size not a multiple of cpus*vector", func(t *testing.T) {
		_, err := NewBuffer(make([]byte, 100), 2, 32)
		require.Error(t, err)
	})

	t.Run("rejects chunk not a multiple of vector size", func(t *testing.T) {
		// 2 cpus * 48 bytes each = 96 total, but 48 is not a multiple of 32.
		_, err := NewBuffer(make([]byte, 96), 2, 32)
		require.Error(t, err)
	})
}

func TestBufferChunk(t *testing.T) {
	raw := make([]byte, 256)
	buf, err := NewBuffer(raw, 4, 32)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		chunk := buf.Chunk(i)
		require.Equal(t, 64, len(chunk))
	}

	// Chunks are disjoint views into the same backing array (§8 property 2).
	buf.Chunk(0)[0] = 0xAB
	require.Equal(t, byte(0xAB), buf.Bytes()[0])
	require.Equal(t, byte(0x00), buf.Bytes()[64])
}

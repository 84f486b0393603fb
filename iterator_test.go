package manganese

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunzinger/manganese/internal/asm/refimpl"
)

func newTestEngine(width, cpus int) *Engine {
	return NewEngine(refimpl.New(width), cpus)
}

func TestSweepDirectionContract(t *testing.T) {
	const vectorSize = 32
	e := newTestEngine(vectorSize, 2)
	buf, err := NewBuffer(make([]byte, 256), 2, vectorSize)
	require.NoError(t, err)

	var mu sync.Mutex
	visitsByChunk := map[int][]int{}

	Sweep(e, buf, Up, func(chunk []byte, off, absOff int) {
		chunkIdx := absOff / buf.ChunkSize()
		mu.Lock()
		visitsByChunk[chunkIdx] = append(visitsByChunk[chunkIdx], off)
		mu.Unlock()
	})

	for _, offs := range visitsByChunk {
		for i := 1; i < len(offs); i++ {
			require.True(t, offs[i] > offs[i-1], "UP sweep must visit strictly ascending offsets")
		}
	}

	visitsByChunk = map[int][]int{}
	Sweep(e, buf, Down, func(chunk []byte, off, absOff int) {
		chunkIdx := absOff / buf.ChunkSize()
		mu.Lock()
		visitsByChunk[chunkIdx] = append(visitsByChunk[chunkIdx], off)
		mu.Unlock()
	})

	for _, offs := range visitsByChunk {
		for i := 1; i < len(offs); i++ {
			require.True(t, offs[i] < offs[i-1], "DOWN sweep must visit strictly descending offsets")
		}
	}
}

func TestSweepPartitionDisjointness(t *testing.T) {
	const vectorSize = 32
	e := newTestEngine(vectorSize, 4)
	buf, err := NewBuffer(make([]byte, 256), 4, vectorSize)
	require.NoError(t, err)

	var mu sync.Mutex
	seen := map[int]int{} // absOff -> count

	Sweep(e, buf, Up, func(chunk []byte, off, absOff int) {
		mu.Lock()
		seen[absOff]++
		mu.Unlock()
	})

	var offs []int
	for off, n := range seen {
		require.Equal(t, 1, n, "each offset must be visited by exactly one worker")
		offs = append(offs, off)
	}
	sort.Ints(offs)
	require.Equal(t, buf.Size()/vectorSize, len(offs))
	for i, off := range offs {
		require.Equal(t, i*vectorSize, off)
	}
}

package manganese

import "fmt"

// Buffer is the externally-owned test region (§3 "Buffer"). The engine
// borrows it by pointer+length for the duration of each test routine and
// must never free or resize it (§3 "Lifecycles").
type Buffer struct {
	bytes      []byte
	cpus       int
	chunk      int
	vectorSize int
}

// NewBuffer wraps buf as a Buffer partitioned into cpus equal chunks, each
// a multiple of vectorSize bytes (§3 invariants). It returns an error if
// len(buf) is not a multiple of cpus*vectorSize.
func NewBuffer(buf []byte, cpus, vectorSize int) (*Buffer, error) {
	if cpus <= 0 {
		return nil, fmt.Errorf("manganese: cpus must be positive, got %d", cpus)
	}
	if vectorSize <= 0 {
		return nil, fmt.Errorf("manganese: vectorSize must be positive, got %d", vectorSize)
	}
	if len(buf)%(cpus*vectorSize) != 0 {
		return nil, fmt.Errorf("manganese: buffer size %d is not a multiple of CPUS*VECTOR_BYTES (%d*%d)", len(buf), cpus, vectorSize)
	}
	chunk := len(buf) / cpus
	if chunk%vectorSize != 0 {
		return nil, fmt.Errorf("manganese: chunk size %d is not a multiple of vector size %d", chunk, vectorSize)
	}
	return &Buffer{bytes: buf, cpus: cpus, chunk: chunk, vectorSize: vectorSize}, nil
}

// Size returns the total buffer length in bytes.
func (b *Buffer) Size() int { return len(b.bytes) }

// CPUs returns the number of chunks (and workers) the buffer is
// partitioned into.
func (b *Buffer) CPUs() int { return b.cpus }

// ChunkSize returns the size in bytes of each of the CPUs() chunks.
func (b *Buffer) ChunkSize() int { return b.chunk }

// VectorSize returns the vector width in bytes this buffer was partitioned
// for (32 for AVX2, 64 for AVX-512).
func (b *Buffer) VectorSize() int { return b.vectorSize }

// Chunk returns the disjoint byte range owned by worker i during a sweep
// (§5 "Shared resources": "each worker has exclusive write access to its
// chunk during a sweep"). i must be in [0, CPUs()).
func (b *Buffer) Chunk(i int) []byte {
	start := i * b.chunk
	return b.bytes[start : start+b.chunk]
}

// Bytes returns the whole underlying buffer. Used only for whole-buffer
// inspection in tests; test routines must go through Chunk to respect the
// partition discipline.
func (b *Buffer) Bytes() []byte { return b.bytes }

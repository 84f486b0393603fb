//go:build linux || darwin

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// AllocateLocked returns a vector-aligned, page-locked, contiguous byte
// buffer of exactly size bytes (§6 "allocator" collaborator). size must
// already satisfy the CPUS*VECTOR_BYTES multiple invariant (§3); this
// function only handles the OS-level mapping and locking, not the
// chunk/vector alignment arithmetic, which lives in buffer.go.
//
// Mirrors the rclone backend/local *_unix.go idiom of a thin build-tagged
// wrapper around golang.org/x/sys/unix with a plain error return.
func AllocateLocked(size int) ([]byte, error) {
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("platform: mmap %d bytes: %w", size, err)
	}
	if err := unix.Mlock(buf); err != nil {
		_ = unix.Munmap(buf)
		return nil, fmt.Errorf("platform: mlock %d bytes: %w", size, err)
	}
	// MADV_HUGEPAGE is advisory only: a fault-free run is unaffected if the
	// kernel declines it, so errors here are not fatal to setup.
	_ = unix.Madvise(buf, unix.MADV_HUGEPAGE)
	return buf, nil
}

// Release unlocks and unmaps a buffer returned by AllocateLocked.
func Release(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if err := unix.Munlock(buf); err != nil {
		return fmt.Errorf("platform: munlock: %w", err)
	}
	if err := unix.Munmap(buf); err != nil {
		return fmt.Errorf("platform: munmap: %w", err)
	}
	return nil
}

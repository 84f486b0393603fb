//go:build darwin

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// TotalMemory returns total physical RAM in bytes, used to turn the CLI's
// "N%" argument (§6) into a concrete buffer size.
func TotalMemory() (uint64, error) {
	v, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0, fmt.Errorf("platform: sysctl hw.memsize: %w", err)
	}
	return v, nil
}

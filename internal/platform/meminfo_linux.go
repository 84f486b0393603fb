//go:build linux

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// TotalMemory returns total physical RAM in bytes, used to turn the CLI's
// "N%" argument (§6) into a concrete buffer size.
func TotalMemory() (uint64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, fmt.Errorf("platform: sysinfo: %w", err)
	}
	return uint64(info.Totalram) * uint64(info.Unit), nil
}

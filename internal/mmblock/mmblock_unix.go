//go:build unix

package mmblock

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// mapAnon allocates a private anonymous mapping. The kernel rounds the
// reservation up to whole pages; the returned slice is exactly size bytes.
func mapAnon(size int) ([]byte, func() error, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmblock: mmap %d bytes: %w", size, err)
	}
	free := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		if err != nil {
			return fmt.Errorf("mmblock: munmap: %w", err)
		}
		return nil
	}
	return data, free, nil
}

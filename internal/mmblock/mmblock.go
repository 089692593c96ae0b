// Package mmblock provides anonymous page-backed block allocation.
//
// Blocks come from private anonymous mappings where the platform supports
// them, so freeing a block genuinely invalidates it: access after the free
// function runs faults instead of reading stale bytes. On other platforms
// blocks fall back to heap slices that are cleared on free.
package mmblock

import "fmt"

// Map allocates a zero-filled block of size bytes and returns it with its
// free function. The free function is idempotent: freeing an already-freed
// block is a no-op.
func Map(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmblock: size must be positive, got %d", size)
	}
	return mapAnon(size)
}

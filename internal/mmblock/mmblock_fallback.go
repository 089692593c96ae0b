//go:build !unix

package mmblock

// mapAnon allocates a heap-backed block when mmap is not available. The free
// function clears the block so retained slices read zeros.
func mapAnon(size int) ([]byte, func() error, error) {
	data := make([]byte, size)
	free := func() error {
		clear(data)
		return nil
	}
	return data, free, nil
}

package arena

// Handle is a generation-checked reference to an object allocated through
// AllocObjectHandle. Resolving after the registry has released the entry
// fails with ErrStaleHandle instead of quietly handing back a cleared value.
//
// Handles are values; copy them freely. The zero Handle is permanently stale.
type Handle[T any] struct {
	r   *Registry
	gen uint64
	ptr *T
}

// ArrayHandle is the array counterpart of Handle, returned by
// AllocArrayHandle.
type ArrayHandle[T Scalar] struct {
	r     *Registry
	gen   uint64
	slice []T
}

// AllocObjectHandle allocates like AllocObject but returns a
// generation-checked handle instead of a raw pointer. Use it when
// use-after-release should be a loud error.
func AllocObjectHandle[T any](r *Registry, init func(*T) error) (Handle[T], error) {
	p, err := AllocObject(r, init)
	if err != nil {
		return Handle[T]{}, err
	}
	return Handle[T]{r: r, gen: r.core.gen, ptr: p}, nil
}

// AllocArrayHandle allocates like AllocArray but returns a generation-checked
// handle instead of a raw slice.
func AllocArrayHandle[T Scalar](r *Registry, n int) (ArrayHandle[T], error) {
	s, err := AllocArray[T](r, n)
	if err != nil {
		return ArrayHandle[T]{}, err
	}
	return ArrayHandle[T]{r: r, gen: r.core.gen, slice: s}, nil
}

// Resolve returns the live pointer, or ErrStaleHandle once any release or
// close has run since allocation.
func (h Handle[T]) Resolve() (*T, error) {
	if !h.Valid() {
		return nil, ErrStaleHandle
	}
	return h.ptr, nil
}

// Valid reports whether the handle still refers to a live entry.
func (h Handle[T]) Valid() bool {
	return h.r != nil && h.r.core.gen == h.gen
}

// Resolve returns the live slice, or ErrStaleHandle once any release or close
// has run since allocation.
func (h ArrayHandle[T]) Resolve() ([]T, error) {
	if !h.Valid() {
		return nil, ErrStaleHandle
	}
	return h.slice, nil
}

// Valid reports whether the handle still refers to a live entry.
func (h ArrayHandle[T]) Valid() bool {
	return h.r != nil && h.r.core.gen == h.gen
}

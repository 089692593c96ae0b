package arena

import (
	"fmt"
	"io"
	"reflect"

	"github.com/joshuapare/arenakit/internal/mmblock"
)

// AllocObject allocates one zeroed T on the registry, runs init on it in
// place, and registers a destruction action bound to T. It returns the live
// pointer; ownership stays with the registry.
//
// T must be a struct type: object allocation exists for composite values with
// identity and teardown. Other kinds fail with ErrInvalidType before anything
// is recorded. A nil init leaves the zero value.
//
// If init returns an error, the value is discarded, nothing is registered,
// and the error is returned as an *AllocError (errors.Is ErrAllocFailed).
// Previously registered entries are unaffected.
//
// On release the value's Destroy hook runs if it implements Destroyer, else
// its Close hook if it implements io.Closer; the value is then cleared, so
// retained pointers read the zero value.
func AllocObject[T any](r *Registry, init func(*T) error) (*T, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, t.String())
	}
	if err := r.core.ensureOpen(); err != nil {
		return nil, err
	}

	p := new(T)
	if init != nil {
		if err := init(p); err != nil {
			return nil, &AllocError{TypeName: t.String(), Err: err}
		}
	}

	r.core.register(entry{
		kind:     KindObject,
		typeName: t.String(),
		count:    1,
		bytes:    int(t.Size()),
		destroy:  func() error { return destroyObject(p) },
	})
	return p, nil
}

// AllocArray allocates a zeroed array of n scalar elements on the registry
// and returns it as a slice of length and capacity n. Ownership stays with
// the registry; on release the elements are cleared, so retained slices read
// zero values.
//
// Element types are restricted to scalars at compile time - arrays of
// composites would silently skip per-element teardown. n must be positive;
// n <= 0 fails with ErrCount and registers nothing.
func AllocArray[T Scalar](r *Registry, n int) ([]T, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCount, n)
	}
	if err := r.core.ensureOpen(); err != nil {
		return nil, err
	}

	s := make([]T, n)
	t := reflect.TypeFor[T]()
	r.core.register(entry{
		kind:     KindArray,
		typeName: t.String(),
		count:    n,
		bytes:    n * int(t.Size()),
		destroy: func() error {
			clear(s)
			return nil
		},
	})
	return s, nil
}

// AllocBlock allocates an anonymous page-backed block of size bytes on the
// registry. The block is zero-filled and, on platforms with mmap support,
// page-aligned. On release the pages are unmapped, so a retained slice faults
// on access instead of reading stale data; on fallback platforms the block is
// heap-backed and cleared on release like an array.
//
// size must be positive; size <= 0 fails with ErrCount.
func AllocBlock(r *Registry, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCount, size)
	}
	if err := r.core.ensureOpen(); err != nil {
		return nil, err
	}

	data, free, err := mmblock.Map(size)
	if err != nil {
		return nil, &AllocError{TypeName: "[]byte", Err: err}
	}

	r.core.register(entry{
		kind:     KindBlock,
		typeName: "[]byte",
		count:    len(data),
		bytes:    len(data),
		destroy:  free,
	})
	return data, nil
}

// destroyObject runs the value's finalization hook, then clears it. Destroy
// wins over Close when a type implements both.
func destroyObject[T any](p *T) error {
	var err error
	switch v := any(p).(type) {
	case Destroyer:
		v.Destroy()
	case io.Closer:
		err = v.Close()
	}
	var zero T
	*p = zero
	return err
}

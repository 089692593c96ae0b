package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocFailed indicates that an allocation could not be completed.
	// Initializer failures are reported as *AllocError, which matches this
	// sentinel via errors.Is.
	ErrAllocFailed = errors.New("arena: allocation failed")

	// ErrInvalidType indicates an object allocation with a non-composite type.
	// Object allocation is for struct types; scalars go through AllocArray.
	ErrInvalidType = errors.New("arena: object allocation requires a struct type")

	// ErrCount indicates a zero or negative element count or block size.
	ErrCount = errors.New("arena: count must be positive")

	// ErrClosed indicates an allocation attempt on a closed registry.
	ErrClosed = errors.New("arena: registry closed")

	// ErrStaleHandle indicates a handle resolved after the registry released
	// the generation it was allocated in.
	ErrStaleHandle = errors.New("arena: stale handle")
)

// AllocError reports a failed allocation for a specific type, wrapping the
// underlying cause (typically an initializer error).
type AllocError struct {
	// TypeName is the Go type the allocation was for.
	TypeName string

	// Err is the underlying cause.
	Err error
}

// Error returns a description of the failed allocation.
func (e *AllocError) Error() string {
	return fmt.Sprintf("arena: allocate %s: %v", e.TypeName, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AllocError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrAllocFailed, so callers can test the
// category without knowing the concrete error type.
func (e *AllocError) Is(target error) bool {
	return target == ErrAllocFailed
}

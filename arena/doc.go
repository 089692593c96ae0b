// Package arena provides a bulk-release allocation registry for setup/teardown workloads.
//
// # Overview
//
// This package implements an allocation registry: a container that records every
// allocation made through it - single objects, typed arrays, or raw byte blocks -
// together with the destruction logic for each allocation's concrete type, and
// releases all of them in one call. Callers never track individual pointers for
// cleanup; the registry owns the full set.
//
// The target pattern is phase-structured programs: allocate during setup, use
// during the run phase, release everything in teardown, then start the next
// cycle with the same registry.
//
// # Registry
//
// The core type is Registry, created with New:
//
//	r := arena.New(nil)
//	defer r.Close()
//
// Allocation goes through package-level generic functions (Go methods cannot
// take type parameters):
//
//   - AllocObject[T](r, init): allocate one composite value, run its initializer
//   - AllocArray[T](r, n): allocate a zeroed array of n scalar elements
//   - AllocBlock(r, size): allocate an anonymous page-backed byte block
//
// Each successful allocation appends one entry to the registry: the value
// reference plus a destruction action bound to the value's concrete type at
// registration time. Type information is erased from the registry's view; the
// bound action preserves correct destruction regardless.
//
// # Type Contract
//
// AllocObject accepts composite (struct) types only. Go constraints cannot
// express "struct kinds only", so violations surface as ErrInvalidType at
// runtime, before any entry is recorded. AllocArray accepts primitive element
// types only; that half of the contract is compile-time, via the Scalar
// constraint. The two operations are deliberately non-overlapping.
//
// # Release Semantics
//
// ReleaseAll destroys every tracked entry exactly once, in reverse registration
// order (LIFO), then leaves the registry empty and ready for the next cycle.
// Entries registered later may reference entries registered earlier, so
// teardown runs newest-first. Releasing an empty registry is a no-op.
//
// Destruction for each entry means:
//
//   - run the value's Destroy() hook if it implements Destroyer, else its
//     Close() hook if it implements io.Closer (errors are collected)
//   - clear the value, so any retained raw reference reads zero values
//   - drop the registry's reference, returning the memory to the runtime
//
// Block entries unmap their pages instead; a retained block slice faults on
// access rather than reading stale data. (Platforms without mmap support fall
// back to heap-backed blocks, cleared like arrays.)
//
// Errors from individual destruction actions do not stop the release; they are
// joined and returned after the full sweep. An action that panics loses only
// its own entry - the entry is removed before the action runs, so a later
// ReleaseAll never destroys it twice and still picks up the remainder.
//
// Close releases all entries and marks the registry closed; later allocations
// fail with ErrClosed. A Registry that becomes unreachable without Close is
// released by a runtime cleanup, but deferred Close is the supported path -
// the backstop exists so abandoned registries do not pin their entries.
//
// # Handles
//
// Raw pointers returned by the allocation functions remain valid Go values
// after release (they read zeros). Callers that want use-after-release to be a
// loud error allocate through the handle variants:
//
//	h, err := arena.AllocObjectHandle[Conn](r, nil)
//	...
//	conn, err := h.Resolve() // ErrStaleHandle once a release has run
//
// Handles carry the registry generation observed at allocation time; any
// ReleaseAll or Close advances the generation and invalidates every
// outstanding handle at once.
//
// # Thread Safety
//
// Registry is not thread-safe; the intended workload is single-threaded
// setup/teardown phases. SafeRegistry wraps a Registry with one coarse mutex
// for callers that share a registry across goroutines. There is no
// finer-grained locking: allocation through the registry is not a concurrent
// hot path.
//
// # Errors
//
// Failures are sentinel errors (ErrInvalidType, ErrCount, ErrClosed,
// ErrStaleHandle) or an *AllocError wrapping an initializer failure, which
// matches errors.Is(err, ErrAllocFailed). A failed allocation never leaves a
// partial entry: the registry's contents are exactly the successful
// registrations.
//
// # Usage Example
//
//	r := arena.New(nil)
//	defer r.Close()
//
//	ints, err := arena.AllocArray[int](r, 100)
//	if err != nil {
//	    return err
//	}
//	for i := range ints {
//	    ints[i] = i
//	}
//
//	cfg, err := arena.AllocObject(r, func(c *Config) error {
//	    c.Workers = 4
//	    return nil
//	})
//	if err != nil {
//	    return err
//	}
//
//	// ... run phase ...
//
//	if err := r.ReleaseAll(); err != nil {
//	    log.Printf("teardown: %v", err)
//	}
//	// r is empty and reusable here.
//
// # Related Packages
//
//   - github.com/joshuapare/arenakit/internal/mmblock: anonymous page-backed
//     block mapping used by AllocBlock
package arena

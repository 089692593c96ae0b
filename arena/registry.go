package arena

import (
	"errors"
	"fmt"
	"runtime"
)

// Registry records allocations and releases them in bulk. Entries are
// destroyed in reverse registration order (LIFO) by ReleaseAll or Close, after
// which the registry is empty and reusable (ReleaseAll) or rejects further
// allocation (Close).
//
// Create with New; the zero value is not usable. Registry is not thread-safe -
// see SafeRegistry for shared use.
type Registry struct {
	core *regCore

	// GC backstop handle, set unless Options.NoCleanup.
	cleanup    runtime.Cleanup
	hasCleanup bool
}

// regCore holds the registry state. It is a separate allocation from Registry
// so the runtime cleanup can release entries without keeping the Registry
// itself reachable.
type regCore struct {
	entries []entry

	// gen advances on every release, invalidating outstanding handles.
	gen uint64

	tracker   Tracker
	closed    bool
	liveBytes int64
	stats     Metrics
}

// New creates an empty registry. A nil opts uses DefaultOptions.
//
// Unless Options.NoCleanup is set, the runtime releases surviving entries if
// the registry becomes unreachable without Close. Deferred Close remains the
// supported teardown path; the backstop only prevents abandoned registries
// from pinning their entries.
func New(opts *Options) *Registry {
	if opts == nil {
		opts = DefaultOptions()
	}

	tracker := opts.Tracker
	if tracker == nil {
		tracker = NopTracker{}
	}

	capacity := opts.InitialCapacity
	if capacity < 0 {
		capacity = 0
	}

	r := &Registry{
		core: &regCore{
			entries: make([]entry, 0, capacity),
			tracker: tracker,
		},
	}
	if !opts.NoCleanup {
		// The cleanup takes the core directly; capturing r here would keep
		// the registry reachable forever.
		r.cleanup = runtime.AddCleanup(r, func(c *regCore) { _ = c.releaseAll() }, r.core)
		r.hasCleanup = true
	}
	return r
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	return len(r.core.entries)
}

// Generation returns the current release generation. It advances each time a
// non-empty registry is released or closed.
func (r *Registry) Generation() uint64 {
	return r.core.gen
}

// Metrics returns a snapshot of cumulative and live counters.
func (r *Registry) Metrics() Metrics {
	m := r.core.stats
	m.LiveEntries = len(r.core.entries)
	m.LiveBytes = r.core.liveBytes
	return m
}

// ReleaseAll destroys every entry exactly once, newest first, and empties the
// registry. Destruction errors do not stop the sweep; they are joined and
// returned after it completes. Releasing an empty registry is a no-op.
//
// The registry remains usable for further allocation afterwards. All
// outstanding handles become stale.
func (r *Registry) ReleaseAll() error {
	return r.core.releaseAll()
}

// Close releases every entry and marks the registry closed. Subsequent
// allocations fail with ErrClosed. Close is idempotent: second and later
// calls return nil.
//
// Close implements io.Closer.
func (r *Registry) Close() error {
	if r.core.closed {
		return nil
	}
	err := r.core.releaseAll()
	r.core.closed = true
	if r.hasCleanup {
		r.cleanup.Stop()
	}
	return err
}

// ensureOpen reports ErrClosed after Close.
func (c *regCore) ensureOpen() error {
	if c.closed {
		return ErrClosed
	}
	return nil
}

// register appends one entry and updates counters. Callers have already
// validated the allocation; registration itself cannot fail.
func (c *regCore) register(e entry) {
	c.entries = append(c.entries, e)
	c.liveBytes += int64(e.bytes)
	c.stats.TotalAllocs++
	c.stats.TotalBytes += int64(e.bytes)
	switch e.kind {
	case KindObject:
		c.stats.ObjectAllocs++
	case KindArray:
		c.stats.ArrayAllocs++
	case KindBlock:
		c.stats.BlockAllocs++
	}
	c.tracker.Allocated(e.kind, e.typeName, e.count, e.bytes)
}

// releaseAll pops entries newest-first, running each destruction action after
// its entry is already off the list. A panicking action therefore loses only
// its own entry: retrying the release never re-runs it, and the older entries
// are still registered.
func (c *regCore) releaseAll() error {
	if len(c.entries) == 0 {
		return nil
	}

	c.gen++

	var errs []error
	released := 0
	for len(c.entries) > 0 {
		i := len(c.entries) - 1
		e := c.entries[i]
		c.entries[i] = entry{} // drop the reference before the action runs
		c.entries = c.entries[:i]

		c.liveBytes -= int64(e.bytes)
		c.stats.TotalReleased++
		released++

		if err := e.destroy(); err != nil {
			c.stats.DestroyErrors++
			errs = append(errs, fmt.Errorf("destroy %s %s: %w", e.kind, e.typeName, err))
		}
		c.tracker.Released(e.kind, e.typeName, e.count, e.bytes)
	}

	c.stats.Cycles++
	c.tracker.CycleComplete(released)
	return errors.Join(errs...)
}

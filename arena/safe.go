package arena

import "sync"

// SafeRegistry wraps a Registry with one coarse mutex so multiple goroutines
// can share it. Allocation through a registry is not a concurrent hot path,
// so a single lock around every operation is the whole design; there is no
// per-entry locking.
//
// Raw pointers and slices handed out by the allocation functions are still
// plain views: the lock covers registry bookkeeping, not caller access to the
// allocated values.
type SafeRegistry struct {
	mu sync.Mutex
	r  *Registry
}

// NewSafe creates a mutex-guarded registry. A nil opts uses DefaultOptions.
func NewSafe(opts *Options) *SafeRegistry {
	return &SafeRegistry{r: New(opts)}
}

// SafeAllocObject is AllocObject under the registry lock. The init function
// runs while the lock is held and must not touch the registry.
func SafeAllocObject[T any](s *SafeRegistry, init func(*T) error) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocObject(s.r, init)
}

// SafeAllocArray is AllocArray under the registry lock.
func SafeAllocArray[T Scalar](s *SafeRegistry, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocArray[T](s.r, n)
}

// SafeAllocBlock is AllocBlock under the registry lock.
func SafeAllocBlock(s *SafeRegistry, size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocBlock(s.r, size)
}

// ReleaseAll destroys every entry under the lock. Destruction actions run
// while the lock is held and must not touch the registry.
func (s *SafeRegistry) ReleaseAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.ReleaseAll()
}

// Close releases every entry and rejects further allocation with ErrClosed.
// Idempotent.
func (s *SafeRegistry) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Close()
}

// Len returns the number of live entries.
func (s *SafeRegistry) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Len()
}

// Generation returns the current release generation.
func (s *SafeRegistry) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Generation()
}

// Metrics returns a snapshot of the wrapped registry's counters.
func (s *SafeRegistry) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Metrics()
}

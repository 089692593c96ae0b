package arena

import (
	"sync"
	"testing"
)

// ============================================================================
// Registry Fixtures
// ============================================================================

// newTestRegistry creates a registry that is closed when the test ends.
func newTestRegistry(t testing.TB) *Registry {
	t.Helper()

	r := New(nil)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

// ============================================================================
// Instrumented Value Types
// ============================================================================

// widget is a composite value with constructor-style fields and a shared
// destruction counter, so tests can assert exactly-once finalization.
type widget struct {
	id       int
	ratio    float64
	destroys *int
}

func (w *widget) Destroy() {
	if w.destroys != nil {
		*w.destroys++
	}
}

// newWidgetInit returns an initializer that sets the canonical field values
// and wires the destruction counter.
func newWidgetInit(id int, ratio float64, destroys *int) func(*widget) error {
	return func(w *widget) error {
		w.id = id
		w.ratio = ratio
		w.destroys = destroys
		return nil
	}
}

// orderedResource appends its name to a shared log when destroyed, so tests
// can assert destruction order.
type orderedResource struct {
	name string
	log  *[]string
}

func (o *orderedResource) Destroy() {
	*o.log = append(*o.log, o.name)
}

// failingResource returns its error from Close, exercising the io.Closer
// path and error aggregation. The close counter lives outside the value
// because released values are cleared.
type failingResource struct {
	closes *int
	err    error
}

func (f *failingResource) Close() error {
	if f.closes != nil {
		*f.closes++
	}
	return f.err
}

// volatileResource panics on Destroy when armed.
type volatileResource struct {
	armed bool
}

func (v *volatileResource) Destroy() {
	if v.armed {
		panic("volatile resource destroyed while armed")
	}
}

// dualResource implements both finalization hooks, for precedence tests.
type dualResource struct {
	destroys *int
	closes   *int
}

func (d *dualResource) Destroy() {
	if d.destroys != nil {
		*d.destroys++
	}
}

func (d *dualResource) Close() error {
	if d.closes != nil {
		*d.closes++
	}
	return nil
}

// ============================================================================
// Tracker Fixtures
// ============================================================================

// countingTracker records notification totals. Safe for concurrent use so the
// runtime cleanup path can be observed from tests.
type countingTracker struct {
	mu        sync.Mutex
	allocated int
	released  int
	cycles    int
	lastCycle int
}

func (c *countingTracker) Allocated(Kind, string, int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allocated++
}

func (c *countingTracker) Released(Kind, string, int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.released++
}

func (c *countingTracker) CycleComplete(released int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cycles++
	c.lastCycle = released
}

func (c *countingTracker) snapshot() (allocated, released, cycles, lastCycle int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocated, c.released, c.cycles, c.lastCycle
}

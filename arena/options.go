package arena

// defaultEntryCapacity is the initial entry slice capacity. Setup phases
// typically register tens of allocations; 16 avoids early regrowth without
// over-reserving for small cycles.
const defaultEntryCapacity = 16

// Options configures a Registry.
//
// Use DefaultOptions() for production-ready defaults. A nil *Options passed
// to New is equivalent to DefaultOptions().
type Options struct {
	// Tracker receives allocation and release notifications.
	// Default: NopTracker (no output)
	Tracker Tracker

	// InitialCapacity pre-sizes the entry list for the expected number of
	// allocations per cycle.
	// Default: 16
	InitialCapacity int

	// NoCleanup disables the runtime backstop that releases entries when an
	// unclosed registry becomes unreachable. Set it when the caller
	// guarantees Close and wants no cleanup registration at all.
	// Default: false
	NoCleanup bool
}

// DefaultOptions returns the recommended defaults.
func DefaultOptions() *Options {
	return &Options{
		Tracker:         nil, // NopTracker
		InitialCapacity: defaultEntryCapacity,
		NoCleanup:       false,
	}
}

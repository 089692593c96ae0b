package arena

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Metrics is a point-in-time snapshot of registry counters. Live* fields
// describe the current contents; the rest are cumulative across the
// registry's lifetime, including released cycles.
type Metrics struct {
	// LiveEntries is the number of entries currently registered.
	LiveEntries int

	// LiveBytes is the total size of live entries in bytes.
	LiveBytes int64

	// TotalAllocs counts every successful allocation.
	TotalAllocs int64

	// ObjectAllocs, ArrayAllocs, and BlockAllocs break TotalAllocs down by
	// allocation kind.
	ObjectAllocs int64
	ArrayAllocs  int64
	BlockAllocs  int64

	// TotalBytes is the cumulative size of all allocations in bytes.
	TotalBytes int64

	// TotalReleased counts every destroyed entry.
	TotalReleased int64

	// Cycles counts completed ReleaseAll sweeps of a non-empty registry.
	Cycles int64

	// DestroyErrors counts destruction actions that returned an error.
	DestroyErrors int64
}

// String renders the snapshot as a single human-readable line with grouped
// digits, e.g. "live=3 (1,600,016 B) ...".
func (m Metrics) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("live=%d (%d B) allocs=%d (obj=%d arr=%d blk=%d) bytes=%d released=%d cycles=%d destroy_errors=%d",
		m.LiveEntries, m.LiveBytes,
		m.TotalAllocs, m.ObjectAllocs, m.ArrayAllocs, m.BlockAllocs,
		m.TotalBytes, m.TotalReleased, m.Cycles, m.DestroyErrors)
}

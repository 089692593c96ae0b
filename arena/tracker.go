package arena

import "log/slog"

// Tracker observes registry activity. Implementations receive one Allocated
// call per successful registration, one Released call per destroyed entry,
// and a CycleComplete call after each full sweep.
//
// Trackers are diagnostics, not contract: the registry behaves identically
// with NopTracker. Implementations must not call back into the registry.
type Tracker interface {
	// Allocated reports a new entry: its kind, Go type name, element count,
	// and size in bytes.
	Allocated(kind Kind, typeName string, count, bytes int)

	// Released reports a destroyed entry with the same dimensions.
	Released(kind Kind, typeName string, count, bytes int)

	// CycleComplete reports the number of entries destroyed by a sweep.
	CycleComplete(released int)
}

// NopTracker discards all notifications. It is the default.
type NopTracker struct{}

func (NopTracker) Allocated(Kind, string, int, int) {}
func (NopTracker) Released(Kind, string, int, int)  {}
func (NopTracker) CycleComplete(int)                {}

// LogTracker emits one structured log line per notification.
type LogTracker struct {
	logger *slog.Logger
}

// NewLogTracker returns a tracker logging through the given logger, or
// slog.Default() when logger is nil. Allocation and release lines log at
// Debug; cycle completion logs at Info.
func NewLogTracker(logger *slog.Logger) *LogTracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogTracker{logger: logger}
}

func (t *LogTracker) Allocated(kind Kind, typeName string, count, bytes int) {
	t.logger.Debug("allocated",
		"kind", kind.String(),
		"type", typeName,
		"count", count,
		"bytes", bytes)
}

func (t *LogTracker) Released(kind Kind, typeName string, count, bytes int) {
	t.logger.Debug("released",
		"kind", kind.String(),
		"type", typeName,
		"count", count,
		"bytes", bytes)
}

func (t *LogTracker) CycleComplete(released int) {
	t.logger.Info("release cycle complete", "entries", released)
}

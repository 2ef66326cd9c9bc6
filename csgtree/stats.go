package csgtree

import "sync/atomic"

// Stats is the process-wide attempt/success/write counter bundle
// spec.md §5 requires to be "the only shared mutable state" and atomic.
// The zero value is ready to use.
type Stats struct {
	Tried     atomic.Int64
	Converted atomic.Int64
	Written   atomic.Int64
}

// Snapshot is a point-in-time, non-atomic copy of Stats for reporting.
type Snapshot struct {
	Tried, Converted, Written int64
}

// Snapshot reads s's three counters into a plain value.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Tried:     s.Tried.Load(),
		Converted: s.Converted.Load(),
		Written:   s.Written.Load(),
	}
}

package search

// Snapshot is a point-in-time copy of the seat-status feed, keyed by
// performance id.  A nil *Snapshot stands for "feed unavailable" and reports
// no status for any performance.
type Snapshot struct {
	statuses map[string]string
}

// NewSnapshot wraps a performance id → status map.
func NewSnapshot(statuses map[string]string) *Snapshot {
	return &Snapshot{statuses: statuses}
}

// Status returns the seat status of the performance, or nil when the feed
// is unavailable or has no entry for it.
func (s *Snapshot) Status(performanceID string) *string {
	if s == nil {
		return nil
	}
	v, ok := s.statuses[performanceID]
	if !ok {
		return nil
	}
	return &v
}

// Len reports the number of performances in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.statuses)
}

package board

// Stats is the last-fetched mapping from status name to order count. Keys are
// whatever the backend reported, including statuses outside the closed set.
type Stats struct {
	counts map[string]int
}

// NewStats copies counts.
func NewStats(counts map[string]int) Stats {
	c := make(map[string]int, len(counts))
	for k, v := range counts {
		c[k] = v
	}
	return Stats{counts: c}
}

// Count returns the count for status, 0 when absent.
func (s Stats) Count(status string) int {
	return s.counts[status]
}

// Map returns a copy of the underlying counts.
func (s Stats) Map() map[string]int {
	return NewStats(s.counts).counts
}

// Len is the number of keys reported.
func (s Stats) Len() int {
	return len(s.counts)
}

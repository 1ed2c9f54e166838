package arraylist

// Allocations returns the number of backing buffers the list has allocated
// since it was created.
func (l *List[T]) Allocations() int {
	return l.allocs
}

// Stamp returns the list's mutation stamp. It changes on every mutation
// and never on reads.
func (l *List[T]) Stamp() uint64 {
	return l.stamp
}

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 if the list has no capacity.
func (l *List[T]) Utilization() float64 {
	if len(l.items) == 0 {
		return 0
	}
	return float64(l.size) / float64(len(l.items))
}

// Metrics returns a snapshot of list statistics.
func (l *List[T]) Metrics() ListMetrics {
	return ListMetrics{
		Len:         l.Len(),
		Cap:         l.Cap(),
		Allocations: l.Allocations(),
		Stamp:       l.Stamp(),
		Utilization: l.Utilization(),
	}
}

// ListMetrics contains statistical information about a list.
type ListMetrics struct {
	Len         int     // Live elements
	Cap         int     // Backing buffer size in elements
	Allocations int     // Backing buffers allocated
	Stamp       uint64  // Mutation stamp
	Utilization float64 // Ratio of Len to Cap (0.0-1.0)
}

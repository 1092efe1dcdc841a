package stats

import "sync"

// ThreadSafe wraps a Gatherer with a mutex so Observe/Results can be called
// from multiple goroutines.
type ThreadSafe struct {
	mu    sync.Mutex
	inner Gatherer
}

// NewThreadSafe wraps inner for concurrent use.
func NewThreadSafe(inner Gatherer) *ThreadSafe {
	return &ThreadSafe{inner: inner}
}

// Observe implements Gatherer.
func (t *ThreadSafe) Observe(x float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inner.Observe(x)
}

// Results implements Gatherer.
func (t *ThreadSafe) Results() [][]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inner.Results()
}

func (t *ThreadSafe) synchronized() {}

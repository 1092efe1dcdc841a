package stats

import (
	"math"
	"sync/atomic"
)

// LockFreeMean is a mean/standard-error gatherer safe for concurrent
// Observe calls without a mutex. Go has no native atomic float add, so the
// running sums are accumulated with a compare-and-swap loop over the raw
// bit pattern.
type LockFreeMean struct {
	n     atomic.Uint64
	sum   atomic.Uint64 // bits of a float64
	sumSq atomic.Uint64 // bits of a float64
}

// NewLockFreeMean returns an empty LockFreeMean gatherer.
func NewLockFreeMean() *LockFreeMean {
	return &LockFreeMean{}
}

func addFloat64(a *atomic.Uint64, delta float64) {
	for {
		old := a.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if a.CompareAndSwap(old, next) {
			return
		}
	}
}

// Observe implements Gatherer.
func (m *LockFreeMean) Observe(x float64) {
	m.n.Add(1)
	addFloat64(&m.sum, x)
	addFloat64(&m.sumSq, x*x)
}

// Results implements Gatherer, returning a single [mean, stderr] row.
func (m *LockFreeMean) Results() [][]float64 {
	n := m.n.Load()
	if n == 0 {
		return [][]float64{{0, 0}}
	}
	sum := math.Float64frombits(m.sum.Load())
	sumSq := math.Float64frombits(m.sumSq.Load())

	mean := sum / float64(n)
	variance := sumSq - mean*sum
	if n > 1 {
		variance /= float64(n - 1)
	} else {
		variance = 0
	}
	if variance < 0 {
		variance = 0
	}
	stdErr := math.Sqrt(variance / float64(n))
	return [][]float64{{mean, stdErr}}
}

func (m *LockFreeMean) synchronized() {}

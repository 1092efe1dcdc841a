package stats

// Convergence decorates a Gatherer, snapshotting its results at a set of
// observation counts (stopping points) so a caller can plot how the
// estimate converges as more paths are simulated.
type Convergence struct {
	inner          Gatherer
	stoppingPoints []uint64
	log            [][]float64
	n              uint64
	next           int
}

// NewConvergence wraps inner, logging a snapshot every time the observation
// count reaches one of stoppingPoints (which should be ascending).
func NewConvergence(inner Gatherer, stoppingPoints []uint64) *Convergence {
	points := make([]uint64, len(stoppingPoints))
	copy(points, stoppingPoints)
	return &Convergence{inner: inner, stoppingPoints: points}
}

// Observe implements Gatherer.
func (c *Convergence) Observe(x float64) {
	c.inner.Observe(x)
	c.n++
	if c.next < len(c.stoppingPoints) && c.n == c.stoppingPoints[c.next] {
		c.log = append(c.log, c.snapshotRow())
		c.next++
	}
}

func (c *Convergence) snapshotRow() []float64 {
	res := c.inner.Results()
	row := make([]float64, 0, 1+2*len(res))
	row = append(row, float64(c.n))
	for _, r := range res {
		row = append(row, r...)
	}
	return row
}

// Results returns every logged snapshot, plus a final row for the current
// count if it wasn't already a stopping point.
func (c *Convergence) Results() [][]float64 {
	out := make([][]float64, len(c.log))
	copy(out, c.log)

	alreadyLogged := len(c.log) > 0 && c.log[len(c.log)-1][0] == float64(c.n)
	if c.n > 0 && !alreadyLogged {
		out = append(out, c.snapshotRow())
	}
	return out
}

package mc

import (
	"golang.org/x/sync/errgroup"

	"github.com/meenmo/quantcore/stats"
)

// Job tracks an asynchronously running pricing simulation. Callers poll the
// gatherer they supplied for a running estimate and call Wait to block for
// completion.
type Job struct {
	g *errgroup.Group
}

// Wait blocks until the simulation finishes and returns its error, if any.
func (j *Job) Wait() error {
	return j.g.Wait()
}

// PriceEuropeanAsync launches PriceEuropean in the background, pushing
// results into gatherer as they're produced. gatherer must be a
// SynchronizedGatherer so a concurrent reader can safely poll
// gatherer.Results() while the job is still running.
func PriceEuropeanAsync(in EuropeanInputs, gatherer stats.SynchronizedGatherer) *Job {
	g := new(errgroup.Group)
	g.Go(func() error {
		return PriceEuropean(in, gatherer)
	})
	return &Job{g: g}
}

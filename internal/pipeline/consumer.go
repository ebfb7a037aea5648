package pipeline

import (
	"sync"

	"github.com/golang/geo/s1"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/extentindex"
)

type Consumer interface {
	Consume(work chan *WorkUnit, results chan *Result, errchan chan error, wg *sync.WaitGroup)
}

type StandardConsumer struct {
	querier   extentindex.Querier
	exact     bool
	tolerance s1.Angle
}

// NewStandardConsumer answers queries with querier. When exact is set, candidates that do not intersect
// the query within tolerance are dropped. The querier is shared by every consumer and must be safe for
// concurrent reads, such as an extentindex.Snapshot.
func NewStandardConsumer(querier extentindex.Querier, exact bool, tolerance s1.Angle) *StandardConsumer {
	return &StandardConsumer{
		querier:   querier,
		exact:     exact,
		tolerance: tolerance,
	}
}

// Continually consumes WorkUnits submitted to a work channel producing a Result for each of them.
// Continues working until work channel is closed or if an error is raised. In this last case submits the
// error to an error channel before quitting
func (c *StandardConsumer) Consume(work chan *WorkUnit, results chan *Result, errchan chan error, wg *sync.WaitGroup) {
	defer wg.Done()

	for unit := range work {
		res, err := c.doWork(unit)
		if err != nil {
			errchan <- err
			glog.Errorf("query %s failed: %v", unit.Query.ID, err)
			// drain so the producer does not block
			for range work {
			}
			return
		}
		results <- res
	}
}

func (c *StandardConsumer) doWork(unit *WorkUnit) (*Result, error) {
	q := unit.Query.Extent
	if q == nil {
		return nil, errors.Errorf("query %s has no extent", unit.Query.ID)
	}

	var candidates []extent.Extent
	for e := range c.querier.Iterator(q) {
		if c.exact && !extent.Intersects(q, e, c.tolerance) {
			continue
		}
		candidates = append(candidates, e)
	}
	return &Result{Position: unit.Position, Query: unit.Query, Candidates: candidates}, nil
}

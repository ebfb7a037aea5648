package pipeline

import (
	"sync"

	"github.com/ecopia-map/geo_extents/internal/geomio"
)

type Producer interface {
	Produce(work chan *WorkUnit, wg *sync.WaitGroup)
}

type StandardProducer struct {
	queries []geomio.Feature
}

func NewStandardProducer(queries []geomio.Feature) *StandardProducer {
	return &StandardProducer{queries: queries}
}

// Submits a WorkUnit per query to the provided work channel. Closes the channel when all work is submitted.
func (p *StandardProducer) Produce(work chan *WorkUnit, wg *sync.WaitGroup) {
	for i, q := range p.queries {
		work <- &WorkUnit{Position: i, Query: q}
	}
	close(work)
	wg.Done()
}

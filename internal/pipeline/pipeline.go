// Package pipeline answers many extent queries concurrently with a producer feeding a pool of consumers.
package pipeline

import (
	"runtime"
	"slices"
	"sync"

	"github.com/golang/geo/s1"
	"github.com/pkg/errors"

	"github.com/ecopia-map/geo_extents/internal/geomio"
	"github.com/ecopia-map/geo_extents/pkg/extentindex"
)

// RunQueries answers every query against querier with the given number of consumers, one per CPU if not
// positive. Results are returned in the order of queries.
func RunQueries(querier extentindex.Querier, queries []geomio.Feature, workers int, exact bool, tolerance s1.Angle) ([]*Result, error) {
	numConsumers := workers
	if numConsumers <= 0 {
		numConsumers = runtime.NumCPU()
	}

	// init channel where to submit work with a buffer 5 times greater than the number of consumer
	workChannel := make(chan *WorkUnit, numConsumers*5)
	resultChannel := make(chan *Result, numConsumers*5)

	// buffered so that every consumer can report its error without blocking
	errorChannel := make(chan error, numConsumers)

	var waitGroup sync.WaitGroup

	waitGroup.Add(1)
	go NewStandardProducer(queries).Produce(workChannel, &waitGroup)

	for range numConsumers {
		waitGroup.Add(1)
		go NewStandardConsumer(querier, exact, tolerance).Consume(workChannel, resultChannel, errorChannel, &waitGroup)
	}

	go func() {
		waitGroup.Wait()
		close(resultChannel)
		close(errorChannel)
	}()

	results := make([]*Result, 0, len(queries))
	for res := range resultChannel {
		results = append(results, res)
	}

	var errs []error
	for err := range errorChannel {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Wrapf(errs[0], "%d workers failed", len(errs))
	}

	slices.SortFunc(results, func(a, b *Result) int { return a.Position - b.Position })
	return results, nil
}

// Package batch evaluates geo operations over many inputs on a pool of
// workers. Each job writes only its own result slot.
package batch

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/markdrayton/geokit/geo"
)

const (
	opMeasure = "measure"
	opBounds  = "bounds"
)

type Pair struct {
	From geo.LatLng `json:"from"`
	To   geo.LatLng `json:"to"`
}

type Result struct {
	Pair
	Distance      float64 `json:"distance_km"`
	RhumbDistance float64 `json:"rhumb_distance_km"`
	RhumbBearing  float64 `json:"rhumb_bearing"`
}

type Processor struct {
	workers int
	metrics *Metrics
}

// New returns a Processor running at most workers jobs at once. m may be nil.
func New(workers int, m *Metrics) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{workers: workers, metrics: m}
}

func (p *Processor) Workers() int {
	return p.workers
}

// Measure returns the great-circle distance, rhumb distance and rhumb bearing
// of every pair, in input order.
func (p *Processor) Measure(ctx context.Context, pairs []Pair) ([]Result, error) {
	results := make([]Result, len(pairs))
	err := p.run(ctx, len(pairs), func(i int) {
		start := time.Now()
		pair := pairs[i]
		results[i] = Result{
			Pair:          pair,
			Distance:      geo.Distance(pair.From, pair.To),
			RhumbDistance: geo.RhumbDistance(pair.From, pair.To),
			RhumbBearing:  geo.RhumbBearingTo(pair.From, pair.To),
		}
		p.metrics.observe(opMeasure, time.Since(start))
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Bounds returns a box enclosing every point. Each worker bounds a
// contiguous chunk and the partial boxes are merged in chunk order with
// geo.Bounds.Union. For points spread over more than a hemisphere the box
// can be wider than geo.BoundsOf over the same slice.
func (p *Processor) Bounds(ctx context.Context, points []geo.LatLng) (geo.Bounds, error) {
	if len(points) == 0 {
		return geo.Bounds{}, geo.ErrNoPoints
	}

	chunks := chunk(points, p.workers)
	partials := make([]geo.Bounds, len(chunks))
	err := p.run(ctx, len(chunks), func(i int) {
		start := time.Now()
		// chunks are never empty
		partials[i], _ = geo.BoundsOf(chunks[i]...)
		p.metrics.observe(opBounds, time.Since(start))
	})
	if err != nil {
		return geo.Bounds{}, err
	}

	b := partials[0]
	for _, partial := range partials[1:] {
		b = b.Union(partial)
	}
	return b, nil
}

// run calls job for every index in [0, n) from at most p.workers goroutines.
func (p *Processor) run(ctx context.Context, n int, job func(i int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	group, ctx := errgroup.WithContext(ctx)

	indexes := make(chan int)
	group.Go(func() error {
		defer close(indexes)
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	workers := p.workers
	if n < workers {
		workers = n
	}

	log.Debugf("running %d jobs on %d workers", n, workers)
	for w := 0; w < workers; w++ {
		group.Go(func() error {
			p.metrics.workerStarted()
			defer p.metrics.workerDone()
			for i := range indexes {
				job(i)
			}
			return nil
		})
	}

	return group.Wait()
}

// chunk splits points into at most n contiguous, non-empty slices.
func chunk(points []geo.LatLng, n int) [][]geo.LatLng {
	if n > len(points) {
		n = len(points)
	}
	size := (len(points) + n - 1) / n
	chunks := make([][]geo.LatLng, 0, n)
	for start := 0; start < len(points); start += size {
		end := start + size
		if end > len(points) {
			end = len(points)
		}
		chunks = append(chunks, points[start:end])
	}
	return chunks
}

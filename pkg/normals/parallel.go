package normals

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the face count from which work is split
// across goroutines.
const DefaultParallelThreshold = 10000

type options struct {
	threshold int
	workers   int
}

// Option tunes how a face table is scheduled. Options never change results.
type Option func(*options)

// WithParallelThreshold sets the minimum face count for concurrent
// processing. Values below one make every call concurrent.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.threshold = n
	}
}

// WithWorkers caps the number of goroutines. Zero or less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func newOptions(opts []Option) options {
	o := options{threshold: DefaultParallelThreshold}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// forEachRange calls fn over [0, n) either once or once per disjoint
// contiguous chunk, one goroutine per chunk.
func forEachRange(n int, o options, fn func(lo, hi int)) {
	if n == 0 {
		return
	}
	if n < o.threshold || o.workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + o.workers - 1) / o.workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

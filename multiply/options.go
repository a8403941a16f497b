// SPDX-License-Identifier: MIT

// Package multiply: functional configuration for the parallel engine.
//
// Design goals:
//   - No global state: every Parallel call resolves its own options.
//   - Safe by construction: panic only on nonsensical values (programmer error).
package multiply

import "github.com/katalvlaran/lvmatmul/parallel"

// DefaultWorkers selects runtime.GOMAXPROCS(0) workers.
const DefaultWorkers = 0

const panicWorkersNegative = "multiply: WithWorkers: n must be >= 0"

// Option mutates internal options. Later options override earlier ones.
type Option func(*options)

type options struct {
	workers int            // DefaultWorkers ⇒ GOMAXPROCS
	pool    *parallel.Pool // caller-owned pool; nil ⇒ Parallel creates and closes its own
}

// WithWorkers sets the worker count of the pool Parallel creates.
// n == 0 selects GOMAXPROCS. Ignored when WithPool supplies a pool.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *options) { o.workers = n }
}

// WithPool makes Parallel run on a caller-owned pool, which it does not close.
// A nil pool restores the default behaviour.
func WithPool(p *parallel.Pool) Option {
	return func(o *options) { o.pool = p }
}

func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

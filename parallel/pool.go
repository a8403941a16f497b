// SPDX-License-Identifier: MIT

// Package parallel runs index-range work on a fixed set of goroutines.
//
// A Pool owns Size goroutines started once by New. Run cuts [0,n) into Spans
// with Split, queues one job per span and returns when every span is done.
// Spans never overlap, so a body that writes only inside its own span needs
// no locking.
//
// Run and Close may be called from different goroutines: Close waits for
// in-flight Run calls, and a Run that starts after Close executes its body on
// the calling goroutine over the whole range.
//
//	pool := parallel.New(0) // GOMAXPROCS goroutines
//	defer pool.Close()
//
//	pool.Run(len(out), func(s parallel.Span) {
//	    for i := s.Lo; i < s.Hi; i++ {
//	        out[i] = work(i)
//	    }
//	})
package parallel

import (
	"runtime"
	"sync"
)

// Span is the half-open index range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Len returns Hi-Lo.
func (s Span) Len() int { return s.Hi - s.Lo }

// job is one span of a Run call together with the barrier it releases.
type job struct {
	body func(Span)
	span Span
	done *sync.WaitGroup
}

// Pool is a reusable set of goroutines serving Run calls.
type Pool struct {
	size int
	jobs chan job

	mu     sync.RWMutex // read-held by Run, write-held by Close
	closed bool
	exited sync.WaitGroup // one per goroutine
}

// New starts a pool of the given size; size <= 0 means runtime.GOMAXPROCS(0).
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	p := &Pool{size: size, jobs: make(chan job, size)}
	p.exited.Add(size)
	for i := 0; i < size; i++ {
		go p.serve()
	}

	return p
}

func (p *Pool) serve() {
	defer p.exited.Done()
	for j := range p.jobs {
		j.body(j.span)
		j.done.Done()
	}
}

// Size returns the number of goroutines in the pool.
func (p *Pool) Size() int { return p.size }

// Close stops the goroutines after in-flight Run calls return.
// It is idempotent.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.exited.Wait()
}

// Split returns the partition Run uses for n items: at most Size non-empty
// spans of near-equal length that cover [0,n) in ascending order.
// The first n%k spans are one item longer than the rest.
func (p *Pool) Split(n int) []Span {
	if n <= 0 {
		return nil
	}
	k := min(p.size, n)
	base, extra := n/k, n%k

	spans := make([]Span, k)
	lo := 0
	for i := range spans {
		hi := lo + base
		if i < extra {
			hi++
		}
		spans[i] = Span{Lo: lo, Hi: hi}
		lo = hi
	}

	return spans
}

// Run calls body once per span of Split(n) and blocks until all calls return.
// A single span, or a closed pool, runs body(Span{0, n}) on the caller.
// body must not call Run on the same pool.
func (p *Pool) Run(n int, body func(Span)) {
	if n <= 0 {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	spans := p.Split(n)
	if p.closed || len(spans) == 1 {
		body(Span{Lo: 0, Hi: n})
		return
	}

	var done sync.WaitGroup
	done.Add(len(spans))
	for _, s := range spans {
		p.jobs <- job{body: body, span: s, done: &done}
	}
	done.Wait()
}

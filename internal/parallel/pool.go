// Package parallel distributes independent row bands of a resize across
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// bandsPerWorker is how many bands each worker gets per Run. More than one
// lets an idle worker steal the tail of a slow neighbor's share.
const bandsPerWorker = 4

// job is one band of one Run call.
type job struct {
	band Band
	fn   func(Band)
	done *sync.WaitGroup
}

func (j job) run() {
	defer j.done.Done()
	j.fn(j.band)
}

// WorkerPool runs the row bands of a resize on a fixed set of goroutines.
//
// Each worker owns a queue of bands. A worker whose queue is empty steals
// bands from the other queues, so bands of uneven cost still finish close
// together.
//
// Thread safety: WorkerPool is safe for concurrent use. A nil *WorkerPool
// runs every band in the calling goroutine.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds per-worker band queues.
	queues []chan job

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting bands.
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for bands.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan job, workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan job, bandsPerWorker*2)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case j := <-own:
			j.run()
		default:
			if j, ok := p.steal(id); ok {
				j.run()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case j := <-own:
				j.run()
			}
		}
	}
}

// drain runs the bands left in a queue.
func (p *WorkerPool) drain(queue chan job) {
	for {
		select {
		case j := <-queue:
			j.run()
		default:
			return
		}
	}
}

// steal takes one band from another worker's queue.
func (p *WorkerPool) steal(id int) (job, bool) {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case j := <-p.queues[i]:
			return j, true
		default:
		}
	}
	return job{}, false
}

// Run splits height rows into bands, calls fn once per band and returns
// after every band finished. Bands are disjoint and together cover
// [0, height).
//
// With a nil or closed pool, or when there is a single band, fn runs in
// the calling goroutine in top-to-bottom order. Run must not race with
// Close.
func (p *WorkerPool) Run(height int, fn func(Band)) {
	if !p.IsRunning() {
		for _, b := range Bands(height, 1) {
			fn(b)
		}
		return
	}

	bands := Bands(height, p.workers*bandsPerWorker)
	if len(bands) == 1 {
		fn(bands[0])
		return
	}

	var done sync.WaitGroup
	done.Add(len(bands))
	for i, b := range bands {
		j := job{band: b, fn: fn, done: &done}
		select {
		case p.queues[i%p.workers] <- j:
		case <-p.done:
			j.run()
		}
	}
	done.Wait()
}

// Close stops accepting bands, waits for queued bands to finish and stops
// all workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is accepting bands. A nil pool is
// never running.
func (p *WorkerPool) IsRunning() bool {
	return p != nil && p.running.Load()
}

// Package parallel runs independent jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs submitted functions on a fixed number of workers that
// share one queue.
//
// WorkerPool is safe for concurrent use. Close stops the workers; work
// handed to a closed pool runs on the caller's goroutine.
type WorkerPool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
	closeMu sync.Mutex
}

// NewWorkerPool starts a pool. workers <= 0 selects GOMAXPROCS.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case work := <-p.queue:
			work()
		}
	}
}

// ExecuteAll runs every function in work and waits for all of them.
// The functions may run in any order.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for _, fn := range work {
		task := func() {
			defer wg.Done()
			fn()
		}
		if !p.submit(task) {
			task()
		}
	}
	wg.Wait()
}

// submit queues fn unless the pool is closed.
func (p *WorkerPool) submit(fn func()) bool {
	if !p.running.Load() {
		return false
	}
	select {
	case p.queue <- fn:
		return true
	case <-p.done:
		return false
	}
}

// Close stops the workers and waits for them to exit. Close is
// idempotent and must not run concurrently with ExecuteAll.
func (p *WorkerPool) Close() {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()

	if !p.running.Swap(false) {
		return
	}
	close(p.done)
	p.wg.Wait()

	// Anything still queued runs here so ExecuteAll callers are released.
	for {
		select {
		case work := <-p.queue:
			work()
		default:
			return
		}
	}
}

// Workers returns the number of workers.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

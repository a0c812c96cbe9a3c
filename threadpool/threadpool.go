// Package threadpool runs integration tasks on a reusable set of
// worker goroutines.
package threadpool

import (
	"sync"
)

// A Future resolves when its task has run to completion.
type Future struct {
	done chan struct{}
	err  error
}

// Wait blocks until the task finishes and returns its error.
func (f *Future) Wait() error {
	<-f.done
	return f.err
}

type task struct {
	run    func() error
	future *Future
}

// A Pool is a fixed set of workers pulling tasks from an unbounded
// queue. Workers are not spawned per integration call: the pool is
// enlarged to fit the largest observed thread plan and reused across
// outer iterations.
type Pool struct {
	mu   sync.Mutex
	cond *sync.Cond
	wg   sync.WaitGroup

	tasks   []task
	workers int
	closed  bool
}

// NewPool creates a pool with the given number of workers.
func NewPool(workers int) *Pool {
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)
	p.Enlarge(workers)

	return p
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the process-wide pool shared by all solvers. It
// starts with no workers; callers enlarge it to their plan size.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = NewPool(0)
	})

	return defaultPool
}

// Size returns the current number of workers.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.workers
}

// Enlarge grows the worker set to n. The pool never shrinks, so
// consecutive integrations with smaller plans keep reusing the workers
// already running.
func (p *Pool) Enlarge(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		panic("threadpool: enlarge on closed pool")
	}

	for p.workers < n {
		p.workers++
		p.wg.Add(1)
		go p.worker()
	}
}

// Enqueue adds a task to the queue and returns a handle that resolves
// when the task has run. Tasks start in queue order on whichever worker
// frees up first. A task that panics is a logic defect and takes the
// process down.
func (p *Pool) Enqueue(f func() error) *Future {
	future := &Future{done: make(chan struct{})}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic("threadpool: enqueue on closed pool")
	}
	if p.workers == 0 {
		p.mu.Unlock()
		panic("threadpool: enqueue on pool with no workers")
	}
	p.tasks = append(p.tasks, task{run: f, future: future})
	p.mu.Unlock()

	p.cond.Signal()

	return future
}

// Close drains the queue, stops all workers, and waits for them to
// exit. The pool cannot be used afterwards.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.cond.Broadcast()
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for len(p.tasks) == 0 && !p.closed {
			p.cond.Wait()
		}

		if len(p.tasks) == 0 && p.closed {
			p.mu.Unlock()
			return
		}

		t := p.tasks[0]
		p.tasks = p.tasks[1:]
		p.mu.Unlock()

		t.future.err = t.run()
		close(t.future.done)
	}
}

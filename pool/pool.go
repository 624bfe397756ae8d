// ABOUTME: Worker pool for fanning batch work over a fixed set of goroutines
// ABOUTME: Sized for short I/O-bound jobs like probing a bin of media files

package pool

import (
	"runtime"
	"sync"
)

// WorkerPool runs submitted tasks on a fixed number of goroutines.
// Tasks are independent; completion order is unspecified.
type WorkerPool struct {
	tasks   chan func()
	workers sync.WaitGroup // worker goroutine lifetimes
	pending sync.WaitGroup // submitted task completion
}

// New starts a pool of workers goroutines pulling from a task queue of
// the given capacity. workers <= 0 means one worker per CPU.
func New(workers, queueSize int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if queueSize < 0 {
		queueSize = 0
	}

	p := &WorkerPool{tasks: make(chan func(), queueSize)}

	for i := 0; i < workers; i++ {
		p.workers.Add(1)

		go func() {
			defer p.workers.Done()

			for task := range p.tasks {
				task()
				p.pending.Done()
			}
		}()
	}

	return p
}

// Submit queues a task. Blocks if the queue is full.
func (p *WorkerPool) Submit(task func()) {
	p.pending.Add(1)
	p.tasks <- task
}

// Wait blocks until every submitted task has completed.
func (p *WorkerPool) Wait() {
	p.pending.Wait()
}

// Close shuts the queue and waits for all workers to exit.
func (p *WorkerPool) Close() {
	close(p.tasks)
	p.workers.Wait()
}

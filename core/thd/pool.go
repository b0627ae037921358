// File: pool.go
// Title: Priority Worker Pool
// Description: Implements the fixed-size worker pool and its priority queue.
//              Tasks wait in a heap ordered by priority, ties broken by
//              submission order. Close drains the queue before joining the
//              workers, so every accepted task runs.

package thd

import (
	"container/heap"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/stdx-go/stdx/core/fault"
	"github.com/stdx-go/stdx/core/log"
)

// task is a queued unit of work; run resolves the submitter's future
type task struct {
	id   string
	prio uint8
	seq  uint64
	run  func()
}

// taskQueue is a max-heap over priority; equal priorities keep FIFO order
// via the submission sequence number
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].prio != q[j].prio {
		return q[i].prio > q[j].prio
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Pool runs submitted tasks on a fixed set of worker goroutines. Pending
// tasks are ordered by priority, highest first; tasks of equal priority run
// in submission order. A Pool must be created with NewPool.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   taskQueue
	wg      sync.WaitGroup
	workers int
	nextSeq uint64
	closed  bool
	logger  *log.Logger
}

// NewPool creates a pool with the given number of workers and starts them.
// A worker count of zero or less selects runtime.NumCPU.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &Pool{
		workers: workers,
		logger:  log.New().WithName("thd.pool"),
	}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work(i)
	}

	p.logger.Debug("worker pool started", log.Fields{"workers": workers})
	return p
}

// WithLogger replaces the pool's logger and returns the pool. Intended for
// wiring during construction, before tasks are submitted.
func (p *Pool) WithLogger(logger *log.Logger) *Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logger = logger
	return p
}

// Workers returns the number of worker goroutines
func (p *Pool) Workers() int {
	return p.workers
}

// Pending returns the number of tasks waiting for a worker
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Close drains the queue, stops the workers, and waits for them to finish.
// Every task accepted before Close runs to completion. A second Close
// returns a closed fault.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return fault.New("worker pool already closed").
			WithCode(fault.CodeClosed)
	}
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Debug("worker pool closed", nil)
	return nil
}

// enqueue adds a task under lock; returns a closed fault after Close
func (p *Pool) enqueue(prio uint8, run func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return fault.New("submit on closed worker pool").
			WithCode(fault.CodeClosed)
	}

	t := &task{
		id:   uuid.NewString(),
		prio: prio,
		seq:  p.nextSeq,
		run:  run,
	}
	p.nextSeq++

	heap.Push(&p.queue, t)
	p.cond.Signal()
	return nil
}

// work is the worker loop; it exits once the pool is closed and the queue
// is empty
func (p *Pool) work(worker int) {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}
		t := heap.Pop(&p.queue).(*task)
		logger := p.logger
		p.mu.Unlock()

		if logger.Enabled(log.LevelTrace) {
			logger.Trace("task started", log.Fields{
				"task_id":  t.id,
				"priority": t.prio,
				"worker":   worker,
			})
		}
		t.run()
	}
}

package core

import (
	"runtime"
	"sync"
)

// Dispatcher runs submitted functions in the background.
type Dispatcher interface {
	Submit(func())
	Stop()
}

// Goroutines runs every submitted function on its own goroutine.
var Goroutines Dispatcher = goroutineDispatcher{}

type goroutineDispatcher struct{}

func (goroutineDispatcher) Submit(fn func()) {
	go fn()
}

func (goroutineDispatcher) Stop() {}

// limitedDispatcher starts a goroutine per function, but lets at most
// cap(slots) of them run at once. The slots are shared by every context
// derived from the one WithWorkerOptions returned.
type limitedDispatcher struct {
	slots chan struct{}
}

func (d limitedDispatcher) Submit(fn func()) {
	go func() {
		d.slots <- struct{}{}
		defer func() { <-d.slots }()
		fn()
	}()
}

func (limitedDispatcher) Stop() {}

// NewWorkerPoolDispatcher returns a Dispatcher backed by a fixed number of
// workers. If size is zero or negative, GOMAXPROCS workers are used.
//
// Submitted functions that block (for example a sequence waiting on a task
// that another submitted function settles) hold a worker while blocked, so
// size the pool for the expected depth of such waits.
func NewWorkerPoolDispatcher(size int) Dispatcher {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
		if size <= 0 {
			size = 1
		}
	}

	pool := &workerPoolDispatcher{
		tasks: make(chan func(), size*2),
	}
	pool.wg.Add(size)
	for range size {
		go pool.worker()
	}
	return pool
}

type workerPoolDispatcher struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

func (d *workerPoolDispatcher) worker() {
	defer d.wg.Done()
	for fn := range d.tasks {
		if fn != nil {
			fn()
		}
	}
}

func (d *workerPoolDispatcher) Submit(fn func()) {
	d.tasks <- fn
}

// Stop waits for queued work to finish. Submit must not be called after Stop.
func (d *workerPoolDispatcher) Stop() {
	d.once.Do(func() {
		close(d.tasks)
		d.wg.Wait()
	})
}

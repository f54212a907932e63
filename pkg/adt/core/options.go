package core

import (
	"context"
	"runtime"
)

type OptionKey string

const (
	DispatcherOptionKey OptionKey = "dispatcher_options"
	WorkerOptionKey     OptionKey = "worker_options"
)

type WorkerOptions struct {
	MaxCount int
	slots    chan struct{}
}

type DispatcherOptions struct {
	Dispatcher Dispatcher
}

// WithDispatcher makes background work started with ctx run on d.
func WithDispatcher(ctx context.Context, d Dispatcher) context.Context {
	return context.WithValue(ctx, DispatcherOptionKey, DispatcherOptions{Dispatcher: d})
}

// WithWorkerOptions bounds background work started with ctx, and with any
// context derived from it, to maxWorkers functions at a time. A zero or
// negative maxWorkers means GOMAXPROCS. A dispatcher set with WithDispatcher
// takes precedence.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	if maxWorkers <= 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{
		MaxCount: maxWorkers,
		slots:    make(chan struct{}, maxWorkers),
	})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

// GetDispatcher returns the dispatcher stored in ctx. Without one, worker
// options in ctx yield a dispatcher limited to their MaxCount; otherwise it
// returns defaultDispatcher.
func GetDispatcher(ctx context.Context, defaultDispatcher Dispatcher) Dispatcher {
	if ctx == nil {
		return defaultDispatcher
	}
	if options, ok := ctx.Value(DispatcherOptionKey).(DispatcherOptions); ok && options.Dispatcher != nil {
		return options.Dispatcher
	}
	if options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions); ok && options.slots != nil {
		return limitedDispatcher{slots: options.slots}
	}
	return defaultDispatcher
}

package app

import (
	"context"
	"time"
)

// task is one unit of work queued for the event loop.
type task struct {
	fn   func() error
	done chan error
}

// Run processes submitted work in order until ctx is cancelled.
// Only one loop may run per App, and an App cannot be restarted.
func (a *App) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(a.stopped)

	a.log.Debug("event loop started")
	for {
		select {
		case <-ctx.Done():
			a.log.Debug("event loop stopped: %v", ctx.Err())
			return nil
		case t := <-a.tasks:
			t.done <- a.execute(t.fn)
		}
	}
}

// Do runs fn on the event loop and waits for it to finish. It returns fn's
// error, ctx.Err() when ctx ends before fn was picked up, or ErrNotRunning
// once the loop has stopped. A panic in fn is returned as a
// *RecoveredPanicError.
func (a *App) Do(ctx context.Context, fn func() error) error {
	t := task{fn: fn, done: make(chan error, 1)}

	select {
	case a.tasks <- t:
	case <-ctx.Done():
		a.metrics.RecordCanceled()
		return ctx.Err()
	case <-a.stopped:
		return ErrNotRunning
	}

	// Once handed over, the task always completes.
	return <-t.done
}

// Running reports whether the event loop is active.
func (a *App) Running() bool {
	if !a.running.Load() {
		return false
	}
	select {
	case <-a.stopped:
		return false
	default:
		return true
	}
}

func (a *App) execute(fn func() error) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			a.metrics.RecordPanic()
			err = &RecoveredPanicError{Value: r}
			a.log.Error("task panicked: %v", r)
		}
		a.metrics.RecordTask(time.Since(start))
	}()
	return fn()
}

package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func startLoop(t *testing.T, a *App) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	// Wait until the loop accepts work.
	if err := a.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run() error = %v", err)
		}
	})
	return cancel
}

func TestDoRunsInOrder(t *testing.T) {
	a := newTestApp(t, Options{})
	startLoop(t, a)

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 0; i < 5; i++ {
		err := a.Do(context.Background(), func() error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})
		if err != nil {
			t.Fatalf("Do(%d) error = %v", i, err)
		}
	}

	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
	if got := a.Metrics().Snapshot().Tasks; got != 6 {
		t.Errorf("Tasks = %d, want 6", got)
	}
}

func TestDoReturnsTaskError(t *testing.T) {
	a := newTestApp(t, Options{})
	startLoop(t, a)

	want := errors.New("boom")
	if err := a.Do(context.Background(), func() error { return want }); !errors.Is(err, want) {
		t.Errorf("Do() error = %v, want %v", err, want)
	}
}

func TestDoRecoversPanic(t *testing.T) {
	a := newTestApp(t, Options{})
	startLoop(t, a)

	err := a.Do(context.Background(), func() error { panic("bad task") })
	var panicErr *RecoveredPanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Do() error = %v, want *RecoveredPanicError", err)
	}
	if panicErr.Value != "bad task" {
		t.Errorf("panic value = %v, want bad task", panicErr.Value)
	}
	if got := a.Metrics().Snapshot().TaskPanics; got != 1 {
		t.Errorf("TaskPanics = %d, want 1", got)
	}

	// The loop survives.
	if err := a.Do(context.Background(), func() error { return nil }); err != nil {
		t.Errorf("Do() after panic error = %v", err)
	}
}

func TestDoCanceledBeforeRun(t *testing.T) {
	a := newTestApp(t, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ran := false
	err := a.Do(ctx, func() error { ran = true; return nil })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Do() error = %v, want DeadlineExceeded", err)
	}
	if ran {
		t.Error("task ran without an event loop")
	}
	if got := a.Metrics().Snapshot().TasksCanceled; got != 1 {
		t.Errorf("TasksCanceled = %d, want 1", got)
	}
}

func TestDoAfterStop(t *testing.T) {
	a := newTestApp(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	if err := a.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if !a.Running() {
		t.Error("Running() = false while the loop runs")
	}

	cancel()
	<-done

	if a.Running() {
		t.Error("Running() = true after stop")
	}
	if err := a.Do(context.Background(), func() error { return nil }); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Do() after stop error = %v, want ErrNotRunning", err)
	}
	if err := a.Run(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() error = %v, want ErrAlreadyRunning", err)
	}
}

func TestRunTwice(t *testing.T) {
	a := newTestApp(t, Options{})
	startLoop(t, a)

	if err := a.Run(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Run() error = %v, want ErrAlreadyRunning", err)
	}
}

func TestDoConcurrentCallers(t *testing.T) {
	a := newTestApp(t, Options{})
	startLoop(t, a)

	const callers = 20
	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = a.Do(context.Background(), func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != callers {
		t.Errorf("counter = %d, want %d", counter, callers)
	}
}

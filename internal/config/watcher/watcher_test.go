package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func newWatcher(t *testing.T, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestWatcher_WatchAndUnwatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paintr.toml")

	w := newWatcher(t)
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := w.Watch(path); err != nil {
		t.Fatalf("second Watch() error = %v", err)
	}
	if files := w.WatchedFiles(); len(files) != 1 {
		t.Fatalf("WatchedFiles() = %v, want 1 file", files)
	}

	if err := w.Unwatch(path); err != nil {
		t.Fatalf("Unwatch() error = %v", err)
	}
	if files := w.WatchedFiles(); len(files) != 0 {
		t.Errorf("WatchedFiles() = %v, want none", files)
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := newWatcher(t)
	if err := w.Watch(filepath.Join(t.TempDir(), "nope", "paintr.toml")); err == nil {
		t.Error("Watch() in a missing directory should fail")
	}
}

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paintr.toml")
	other := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(path, []byte("[server]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	events := make(chan Event, 16)
	w := newWatcher(t, WithDebounce(50*time.Millisecond))
	w.OnChange(func(e Event) { events <- e })
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("[server]\nport = 9000\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case e := <-events:
		if filepath.Base(e.Path) != "paintr.toml" {
			t.Errorf("event path = %q, want the watched file", e.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for watched file")
	}

	select {
	case e := <-events:
		t.Errorf("unexpected extra event %+v; bursts should be coalesced", e)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_HandlerPanic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paintr.yaml")

	got := make(chan struct{}, 1)
	w := newWatcher(t, WithDebounce(0))
	w.OnChange(func(Event) { panic("boom") })
	w.OnChange(func(Event) {
		select {
		case got <- struct{}{}:
		default:
		}
	})
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("server: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler not called after first panicked")
	}
}

func TestWatcher_Closed(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "a.toml")); err != ErrClosed {
		t.Errorf("Watch() after Close = %v, want ErrClosed", err)
	}
}

package mode

import (
	"errors"
	"testing"

	"github.com/dshills/paintr/internal/scene"
)

type fixture struct {
	doc     *scene.Document
	mgr     *Manager
	commits []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{doc: scene.NewDocument()}
	f.mgr = NewManager(&Context{
		Canvas: f.doc,
		Commit: func(tool string) { f.commits = append(f.commits, tool) },
	})
	f.mgr.Register(Defaults()...)
	return f
}

func (f *fixture) switchTo(t *testing.T, name string) {
	t.Helper()
	if err := f.mgr.Switch(name); err != nil {
		t.Fatalf("Switch(%q) error = %v", name, err)
	}
}

func TestManagerModes(t *testing.T) {
	f := newFixture(t)
	want := []string{"circle", "ellipse", "freehand", "line", "polygon", "rectangle", "select", "square"}

	got := f.mgr.Modes()
	if len(got) != len(want) {
		t.Fatalf("Modes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Modes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestManagerSwitchUnknown(t *testing.T) {
	f := newFixture(t)
	f.switchTo(t, ModeLine)

	err := f.mgr.Switch("spray")
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Switch(spray) error = %v, want ErrUnknownMode", err)
	}
	if !f.mgr.IsMode(ModeLine) {
		t.Errorf("current = %q, want line to stay active", f.mgr.CurrentName())
	}
}

func TestManagerSwitchTracksPrevious(t *testing.T) {
	f := newFixture(t)
	if f.mgr.Current() != nil || f.mgr.CurrentName() != "" {
		t.Fatal("new manager should have no current mode")
	}

	f.switchTo(t, ModeRectangle)
	f.switchTo(t, ModeCircle)

	if f.mgr.CurrentName() != ModeCircle {
		t.Errorf("CurrentName() = %q, want circle", f.mgr.CurrentName())
	}
	if prev := f.mgr.Previous(); prev == nil || prev.Name() != ModeRectangle {
		t.Errorf("Previous() = %v, want rectangle", prev)
	}
}

func TestManagerSwitchSameModeTwice(t *testing.T) {
	f := newFixture(t)
	f.switchTo(t, ModeRectangle)
	f.switchTo(t, ModeRectangle)

	f.mgr.HandlePointer(press(10, 10))
	f.mgr.HandlePointer(move(40, 40))
	f.mgr.HandlePointer(release(40, 40))

	if f.doc.Len() != 1 {
		t.Errorf("Len() = %d, want exactly one shape", f.doc.Len())
	}
	if len(f.commits) != 1 {
		t.Errorf("commits = %v, want one", f.commits)
	}
}

func TestManagerSwitchResetsSelection(t *testing.T) {
	f := newFixture(t)
	f.switchTo(t, ModeRectangle)
	drawRect(f, 10, 10, 50, 50)

	f.switchTo(t, ModeSelect)
	shape := f.doc.Shapes()[0]
	if !shape.Selectable || !f.doc.Selection() {
		t.Fatal("select mode should enable selection")
	}

	f.mgr.HandlePointer(press(20, 20))
	if !shape.Active() {
		t.Fatal("press on shape should select it")
	}
	f.mgr.HandlePointer(release(20, 20))

	f.switchTo(t, ModeLine)
	if shape.Selectable {
		t.Error("switching away from select should make shapes non-selectable")
	}
	if f.doc.Selection() {
		t.Error("switching away from select should disable selection")
	}
	if len(f.doc.ActiveSelection()) != 0 {
		t.Error("switching should drop the active selection")
	}
}

func TestManagerSwitchDisablesFreeDrawing(t *testing.T) {
	f := newFixture(t)
	f.switchTo(t, ModeFreehand)
	if !f.doc.FreeDrawing() {
		t.Fatal("freehand should enable free drawing")
	}

	f.switchTo(t, ModeSelect)
	if f.doc.FreeDrawing() {
		t.Error("free drawing should be off after switching")
	}
}

func TestManagerOnChange(t *testing.T) {
	f := newFixture(t)

	var seen []string
	unregister := f.mgr.OnChange(func(from, to Mode) {
		name := "<nil>"
		if from != nil {
			name = from.Name()
		}
		seen = append(seen, name+">"+to.Name())
	})

	f.switchTo(t, ModeLine)
	f.switchTo(t, ModeCircle)
	unregister()
	f.switchTo(t, ModeSelect)

	want := []string{"<nil>>line", "line>circle"}
	if len(seen) != len(want) {
		t.Fatalf("callbacks = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("callback[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestManagerHandlePointerWithoutMode(t *testing.T) {
	f := newFixture(t)
	f.mgr.HandlePointer(press(1, 1))
	f.mgr.HandlePointer(release(1, 1))

	if f.doc.Len() != 0 {
		t.Errorf("Len() = %d, want 0 with no active mode", f.doc.Len())
	}
	if f.mgr.State() != StateIdle {
		t.Errorf("State() = %v, want idle", f.mgr.State())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateDragging, "dragging"},
		{StateClosingPolygon, "closing-polygon"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestManagerRefreshDropsGesture(t *testing.T) {
	f := newFixture(t)
	f.switchTo(t, ModeRectangle)

	f.mgr.HandlePointer(press(10, 10))
	f.mgr.HandlePointer(move(30, 30))
	if f.mgr.State() != StateDragging {
		t.Fatal("expected a drag in progress")
	}

	f.doc.Clear()
	if err := f.mgr.Refresh(); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if f.mgr.State() != StateIdle {
		t.Errorf("State() = %v, want idle after refresh", f.mgr.State())
	}
	if len(f.commits) != 0 {
		t.Errorf("commits = %v, want none", f.commits)
	}

	f.mgr.HandlePointer(move(50, 50))
	if f.doc.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.doc.Len())
	}
}

func TestManagerSettleCommitsGesture(t *testing.T) {
	f := newFixture(t)
	f.switchTo(t, ModeRectangle)

	f.mgr.HandlePointer(press(10, 10))
	f.mgr.HandlePointer(move(20, 20))
	if err := f.mgr.Settle(); err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	if !f.mgr.IsMode(ModeRectangle) || f.mgr.State() != StateIdle {
		t.Errorf("after Settle() mode = %q state = %v, want idle rectangle", f.mgr.CurrentName(), f.mgr.State())
	}
	if len(f.commits) != 1 || f.commits[0] != ModeRectangle {
		t.Errorf("commits = %v, want [rectangle]", f.commits)
	}

	f.mgr.HandlePointer(move(40, 40))
	f.mgr.HandlePointer(release(40, 40))
	s := f.doc.Shapes()[0]
	if s.Width != 10 || s.Height != 10 {
		t.Errorf("rect = %gx%g, want 10x10 kept after settle", s.Width, s.Height)
	}
	if len(f.commits) != 1 {
		t.Errorf("commits = %v, want no commit for the stale release", f.commits)
	}
}

func TestManagerSettleIdle(t *testing.T) {
	f := newFixture(t)
	f.switchTo(t, ModeRectangle)
	drawRect(f, 10, 10, 30, 30)
	f.commits = nil

	if err := f.mgr.Settle(); err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	if len(f.commits) != 0 {
		t.Errorf("commits = %v, want none when idle", f.commits)
	}
}

func TestManagerSettleKeepsSelection(t *testing.T) {
	f := newFixture(t)
	f.switchTo(t, ModeRectangle)
	drawRect(f, 10, 10, 30, 30)
	f.switchTo(t, ModeSelect)

	f.mgr.HandlePointer(press(20, 20))
	if err := f.mgr.Settle(); err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	if got := len(f.doc.ActiveSelection()); got != 1 {
		t.Errorf("ActiveSelection() len = %d, want 1", got)
	}
}

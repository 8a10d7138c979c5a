package keymap

import (
	"testing"

	"github.com/dshills/paintr/internal/input/key"
)

func TestDefaultLookup(t *testing.T) {
	km, err := Default().Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		name   string
		ev     key.Event
		action string
		found  bool
	}{
		{"ctrl c", key.FromDOM("c", key.ModCtrl), ActionCopy, true},
		{"cmd c", key.FromDOM("c", key.ModMeta), ActionCopy, true},
		{"ctrl X uppercase", key.FromDOM("X", key.ModCtrl), ActionCut, true},
		{"cmd v", key.FromDOM("v", key.ModMeta), ActionPaste, true},
		{"ctrl z", key.FromDOM("z", key.ModCtrl), ActionUndo, true},
		{"ctrl y", key.FromDOM("y", key.ModCtrl), ActionRedo, true},
		{"plain z", key.FromDOM("z", key.ModNone), "", false},
		{"alt z", key.FromDOM("z", key.ModAlt), "", false},
		{"ctrl shift z", key.FromDOM("Z", key.ModCtrl|key.ModShift), "", false},
		{"ctrl s", key.FromDOM("s", key.ModCtrl), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := km.Lookup(tt.ev)
			if ok != tt.found {
				t.Fatalf("Lookup(%v) found = %v, want %v", tt.ev, ok, tt.found)
			}
			if b.Action != tt.action {
				t.Errorf("Lookup(%v) = %q, want %q", tt.ev, b.Action, tt.action)
			}
		})
	}
}

func TestMergeOverrides(t *testing.T) {
	user := FromMap("user", map[string]string{
		"Ctrl+Z":    ActionClear,
		"Ctrl+R":    "mode.rectangle",
		"Backspace": ActionCut,
	})

	km, err := Default().Merge(user).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if b, _ := km.Lookup(key.MustParse("Ctrl+Z")); b.Action != ActionClear {
		t.Errorf("Ctrl+Z = %q, want user override %q", b.Action, ActionClear)
	}
	if b, _ := km.Lookup(key.MustParse("Meta+Z")); b.Action != ActionUndo {
		t.Errorf("Meta+Z = %q, want default %q", b.Action, ActionUndo)
	}
	if b, _ := km.Lookup(key.FromDOM("Backspace", key.ModNone)); b.Action != ActionCut {
		t.Errorf("Backspace = %q, want %q", b.Action, ActionCut)
	}
}

func TestChords(t *testing.T) {
	user := FromMap("user", map[string]string{
		"ctrl+s":      ActionClear,
		"Cmd+Shift+z": ActionRedo,
		"Delete":      ActionCut,
	})
	km, err := Default().Merge(user).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := km.Chords()
	if len(got) != km.Len() {
		t.Fatalf("Chords() = %v, want %d entries", got, km.Len())
	}
	has := make(map[string]bool, len(got))
	for i, c := range got {
		has[c] = true
		if i > 0 && got[i-1] > c {
			t.Errorf("Chords() not sorted: %v", got)
		}
	}
	for _, want := range []string{"Ctrl+C", "Meta+V", "Ctrl+S", "Shift+Meta+Z", "Delete"} {
		if !has[want] {
			t.Errorf("Chords() = %v, missing %q", got, want)
		}
	}
	if has["Ctrl+Shift+Z"] {
		t.Error("Chords() lists an unbound chord")
	}

	var nilMap *ParsedKeymap
	if nilMap.Chords() != nil {
		t.Error("nil keymap should have no chords")
	}
}

func TestParseRejectsBadBindings(t *testing.T) {
	tests := []struct {
		name string
		km   *Keymap
	}{
		{"bad keys", NewKeymap("x").Add("Hyper+Q", ActionCopy)},
		{"empty action", NewKeymap("x").Add("Ctrl+Q", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.km.Parse(); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

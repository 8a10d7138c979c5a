package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"Ctrl+Z", NewRuneEvent('z', ModCtrl)},
		{"ctrl+z", NewRuneEvent('z', ModCtrl)},
		{"Cmd+Y", NewRuneEvent('y', ModMeta)},
		{"Meta+Shift+Z", NewRuneEvent('z', ModMeta|ModShift)},
		{"Escape", NewSpecialEvent(KeyEscape, ModNone)},
		{"Ctrl+Delete", NewSpecialEvent(KeyDelete, ModCtrl)},
		{"Space", NewRuneEvent(' ', ModNone)},
		{"Ctrl+Plus", NewRuneEvent('+', ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"Hyper+Z", ErrInvalidSpec},
		{"Ctrl+", ErrInvalidSpec},
		{"Ctrl+Banana", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestFromDOM(t *testing.T) {
	tests := []struct {
		name string
		mods Modifier
		want Event
	}{
		{"Z", ModCtrl | ModShift, NewRuneEvent('z', ModCtrl|ModShift)},
		{"c", ModMeta, NewRuneEvent('c', ModMeta)},
		{"ArrowUp", ModNone, NewSpecialEvent(KeyUp, ModNone)},
		{" ", ModNone, NewRuneEvent(' ', ModNone)},
		{"A", ModShift, NewRuneEvent('A', ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromDOM(tt.name, tt.mods); !got.Equals(tt.want) {
				t.Errorf("FromDOM(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	if got := FromDOM("Shift", ModShift); got.Key != KeyNone {
		t.Errorf("FromDOM(Shift).Key = %v, want None", got.Key)
	}
}

func TestEventStringRoundTrip(t *testing.T) {
	specs := []string{"Ctrl+Z", "Meta+Shift+Z", "Enter", "x", "Alt+Space", "Ctrl+Plus"}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			ev := MustParse(spec)
			back, err := Parse(ev.String())
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", ev.String(), err)
			}
			if !back.Equals(ev) {
				t.Errorf("round trip %q -> %q changed the event", spec, ev.String())
			}
		})
	}
}

func TestModifierHasPrimary(t *testing.T) {
	if !ModCtrl.HasPrimary() || !ModMeta.HasPrimary() {
		t.Error("Ctrl and Meta should both count as primary")
	}
	if ModShift.With(ModAlt).HasPrimary() {
		t.Error("Shift+Alt should not count as primary")
	}
	if got := ModCtrl.With(ModShift).String(); got != "Ctrl+Shift" {
		t.Errorf("String() = %q, want Ctrl+Shift", got)
	}
}

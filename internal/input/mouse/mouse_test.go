package mouse

import (
	"testing"

	"github.com/dshills/paintr/internal/scene"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"press", ActionPress},
		{"mousedown", ActionPress},
		{"Release", ActionRelease},
		{"pointermove", ActionMove},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			if err != nil {
				t.Fatalf("ParseAction(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseAction("wiggle"); err == nil {
		t.Error("ParseAction(wiggle) should fail")
	}
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		in   string
		want Button
	}{
		{"", ButtonNone},
		{"left", ButtonLeft},
		{"0", ButtonLeft},
		{"2", ButtonRight},
		{"secondary", ButtonRight},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseButton(tt.in)
			if err != nil {
				t.Fatalf("ParseButton(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseButton(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEventButtons(t *testing.T) {
	if !Move(scene.Pt(1, 2)).IsPrimary() {
		t.Error("moves should count as primary")
	}
	if !SecondaryClick(scene.Pt(1, 2)).IsSecondary() {
		t.Error("SecondaryClick should be secondary")
	}
	if Press(scene.Pt(1, 2)).IsSecondary() {
		t.Error("Press should not be secondary")
	}
}

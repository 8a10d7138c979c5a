package gallery

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/paintr/internal/engine/history"
)

func openGallery(t *testing.T) *Gallery {
	t.Helper()
	g, err := Open(context.Background())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func snap(s string) history.Snapshot {
	return history.NewSnapshot([]byte(s))
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	g := openGallery(t)

	e, err := g.Save(ctx, "  Sketch  ", snap(`{"version":"1"}`))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if e.ID == "" {
		t.Error("Save() should assign an id")
	}
	if e.Name != "Sketch" {
		t.Errorf("Name = %q, want trimmed name", e.Name)
	}

	got, s, err := g.Load(ctx, e.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Name != "Sketch" || got.Size != e.Size {
		t.Errorf("Load() entry = %+v, want %+v", got, e)
	}
	if s.String() != `{"version":"1"}` {
		t.Errorf("Load() snapshot = %s", s)
	}
}

func TestLoadUnknownID(t *testing.T) {
	g := openGallery(t)
	_, _, err := g.Load(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestSaveRejectsNames(t *testing.T) {
	ctx := context.Background()
	g := openGallery(t)
	if _, err := g.Save(ctx, "taken", snap("{}")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmptyName},
		{"blank", "   \t", ErrEmptyName},
		{"duplicate", "taken", ErrDuplicateName},
		{"duplicate after trim", " taken ", ErrDuplicateName},
		{"too long", strings.Repeat("a", MaxNameLength+1), ErrNameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Save(ctx, tt.in, snap("{}"))
			var nameErr *NameError
			if !errors.As(err, &nameErr) {
				t.Fatalf("Save(%q) error = %v, want *NameError", tt.in, err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Save(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}

	if n, _ := g.Len(ctx); n != 1 {
		t.Errorf("Len() = %d, rejected saves should not be stored", n)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"plain", "Sketch", "Sketch", nil},
		{"nfc", "Cafe\u0301", "Caf\u00e9", nil},
		{"graphemes at limit", strings.Repeat("e\u0301", MaxNameLength), strings.Repeat("\u00e9", MaxNameLength), nil},
		{"flags count once", strings.Repeat("\U0001F1EB\U0001F1F7", MaxNameLength), strings.Repeat("\U0001F1EB\U0001F1F7", MaxNameLength), nil},
		{"empty", "", "", ErrEmptyName},
		{"too long", strings.Repeat("x", MaxNameLength+1), "", ErrNameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeName(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NormalizeName() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNFCDuplicates(t *testing.T) {
	ctx := context.Background()
	g := openGallery(t)

	if _, err := g.Save(ctx, "Caf\u00e9", snap("{}")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	_, err := g.Save(ctx, "Cafe\u0301", snap("{}"))
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Save() error = %v, want ErrDuplicateName", err)
	}
}

func TestSaveEmptySnapshot(t *testing.T) {
	g := openGallery(t)
	_, err := g.Save(context.Background(), "blank", history.Snapshot{})
	if !errors.Is(err, ErrEmptySnapshot) {
		t.Errorf("Save() error = %v, want ErrEmptySnapshot", err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	g := openGallery(t)

	if got, err := g.List(ctx); err != nil || len(got) != 0 {
		t.Fatalf("List() = %v, %v; want empty", got, err)
	}

	names := []string{"one", "two", "three"}
	for _, n := range names {
		if _, err := g.Save(ctx, n, snap(`{"n":"`+n+`"}`)); err != nil {
			t.Fatalf("Save(%q) error = %v", n, err)
		}
	}

	got, err := g.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != len(names) {
		t.Fatalf("List() returned %d entries, want %d", len(got), len(names))
	}
	for i, n := range names {
		if got[i].Name != n {
			t.Errorf("List()[%d].Name = %q, want %q", i, got[i].Name, n)
		}
		if got[i].Size == 0 {
			t.Errorf("List()[%d].Size = 0", i)
		}
	}
}

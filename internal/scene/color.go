package scene

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is returned for colours that are neither a known name nor hex.
var ErrBadColor = errors.New("invalid colour")

// namedColors covers the palette offered by the toolbar.
var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"purple": "#800080",
	"gray":   "#808080",
	"grey":   "#808080",
}

// NormalizeColor returns c as a lowercase "#rrggbb" string.
// The empty string and "transparent" both mean no paint and map to "".
func NormalizeColor(c string) (string, error) {
	c = strings.ToLower(strings.TrimSpace(c))
	switch c {
	case "", "transparent", "none":
		return "", nil
	}
	if hex, ok := namedColors[c]; ok {
		return hex, nil
	}
	if !strings.HasPrefix(c, "#") {
		c = "#" + c
	}
	col, err := colorful.Hex(c)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadColor, c)
	}
	return col.Hex(), nil
}

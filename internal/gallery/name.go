package gallery

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// MaxNameLength is the longest accepted name, in grapheme clusters.
const MaxNameLength = 64

// NormalizeName trims and NFC-normalises name, then validates it.
func NormalizeName(name string) (string, error) {
	n := norm.NFC.String(strings.TrimSpace(name))
	if n == "" {
		return "", &NameError{Name: name, Err: ErrEmptyName}
	}
	if uniseg.GraphemeClusterCount(n) > MaxNameLength {
		return "", &NameError{Name: name, Err: ErrNameTooLong}
	}
	return n, nil
}

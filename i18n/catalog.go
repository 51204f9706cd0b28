package i18n

import (
	"fmt"
	"os"
	"strings"
)

// Catalog maps base-language strings to translations. The two RC files
// must list their strings in the same order; pairing is by index, as in
// the upstream localization pipeline.
type Catalog struct {
	strings map[string]string
}

// NewCatalog builds a catalog from parsed base and translated string
// lists. Extra entries on either side are ignored.
func NewCatalog(base, translated []string) *Catalog {
	n := min(len(base), len(translated))
	m := make(map[string]string, n)
	for i := 0; i < n; i++ {
		if translated[i] != "" {
			m[base[i]] = translated[i]
		}
	}
	return &Catalog{strings: m}
}

// LoadCatalog reads paired RC files from disk.
func LoadCatalog(basePath, translatedPath string) (*Catalog, error) {
	base, err := os.ReadFile(basePath)
	if err != nil {
		return nil, fmt.Errorf("read base strings: %w", err)
	}
	trans, err := os.ReadFile(translatedPath)
	if err != nil {
		return nil, fmt.Errorf("read translated strings: %w", err)
	}
	return NewCatalog(ParseRC(string(base)), ParseRC(string(trans))), nil
}

// Get returns the translation for a base string, or the base string
// itself when no translation exists. A nil catalog passes everything
// through, so callers never need a nil check.
func (c *Catalog) Get(s string) string {
	if c == nil {
		return s
	}
	if t, ok := c.strings[s]; ok {
		return t
	}
	return s
}

// Len returns the number of translated strings.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.strings)
}

// Menu labels mark their access key with '&': "&Open" activates on O.
// A doubled "&&" is a literal ampersand.

// Hotkey returns the access key of a label, lowercased, or 0.
func Hotkey(label string) rune {
	for i := 0; i < len(label)-1; i++ {
		if label[i] == '&' {
			if label[i+1] == '&' {
				i++
				continue
			}
			r := []rune(label[i+1:])
			if len(r) > 0 {
				return toLowerRune(r[0])
			}
		}
	}
	return 0
}

// StripHotkey removes the access-key marker for display.
func StripHotkey(label string) string {
	var b strings.Builder
	for i := 0; i < len(label); i++ {
		if label[i] == '&' {
			if i+1 < len(label) && label[i+1] == '&' {
				b.WriteByte('&')
				i++
			}
			continue
		}
		b.WriteByte(label[i])
	}
	return b.String()
}

// HotkeyIndex returns the rune index of the access key in the stripped
// label, or -1, for underline rendering.
func HotkeyIndex(label string) int {
	idx := 0
	for i := 0; i < len(label); i++ {
		if label[i] == '&' {
			if i+1 < len(label) && label[i+1] == '&' {
				idx++
				i++
				continue
			}
			return idx
		}
		if label[i]&0xc0 != 0x80 { // count rune starts only
			idx++
		}
	}
	return -1
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

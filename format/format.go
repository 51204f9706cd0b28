package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ansipaint/ansi"
	"ansipaint/canvas"
)

// Kind identifies a document format.
type Kind uint8

const (
	KindANSI Kind = iota
	KindText
	KindImage
)

// Detect picks a format from a file name's extension. Unknown
// extensions are treated as ANSI art, the native format.
func Detect(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".asc":
		return KindText
	case ".png", ".jpg", ".jpeg", ".gif":
		return KindImage
	default: // .ans, .ansi, anything else
		return KindANSI
	}
}

// LoadOptions tune image import; zero value is sensible.
type LoadOptions struct {
	ImageWidth int
	ImageMode  ImportMode
	ColorMode  ansi.ColorMode
}

// LoadFile opens path and decodes it according to its extension.
func LoadFile(path string, opts LoadOptions) (*canvas.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch Detect(path) {
	case KindText:
		return LoadText(f)
	case KindImage:
		w := opts.ImageWidth
		if w <= 0 {
			w = 80
		}
		return LoadImage(f, w, opts.ImageMode, opts.ColorMode)
	default:
		return LoadANSI(f)
	}
}

// SaveFile writes the canvas to path in the format its extension names.
// Raster formats cannot be written; saving to one falls back to ANSI.
// When backup is set an existing file is renamed to path~ first.
func SaveFile(path string, c *canvas.Canvas, mode ansi.ColorMode, backup bool) error {
	if backup {
		if _, err := os.Stat(path); err == nil {
			if err := os.Rename(path, path+"~"); err != nil {
				return fmt.Errorf("backup %s: %w", path, err)
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch Detect(path) {
	case KindText:
		err = SaveText(f, c)
	default:
		err = SaveANSI(f, c, mode)
	}
	if err != nil {
		return err
	}
	return f.Close()
}

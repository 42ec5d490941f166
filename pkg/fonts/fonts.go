// Package fonts provides the embedded typefaces used for chart text.
//
// The Go font family ships inside golang.org/x/image, so charts render the
// same glyphs on every machine without consulting system font directories.
// Parsed fonts are immutable and shared; faces are not safe for concurrent
// use and must be created per render with [Face].
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Weight selects between the regular and bold typeface.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// Parsed fonts (computed once on first access).
var (
	regular, bold *truetype.Font
	parseErr      error
	parseOnce     sync.Once
)

func load() error {
	parseOnce.Do(func() {
		if regular, parseErr = truetype.Parse(goregular.TTF); parseErr != nil {
			return
		}
		bold, parseErr = truetype.Parse(gobold.TTF)
	})
	return parseErr
}

// Font returns the parsed typeface for w.
func Font(w Weight) (*truetype.Font, error) {
	if err := load(); err != nil {
		return nil, err
	}
	if w == Bold {
		return bold, nil
	}
	return regular, nil
}

// Face returns a new face of the given weight, size in points and resolution.
// The caller owns the face; it caches glyphs and must not be shared between
// goroutines.
func Face(w Weight, size, dpi float64) (font.Face, error) {
	f, err := Font(w)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

// fonts.go — Font loading and face creation over x/image opentype.
// An empty path selects the embedded Go font so the binary works without
// font assets on disk.
package render

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrInvalidFontSize reports a non-positive point size or DPI.
var ErrInvalidFontSize = errors.New("invalid font size")

// FontManager owns a parsed font and mints faces at arbitrary sizes.
type FontManager struct {
	parsed *opentype.Font
}

// NewFontManager loads and parses the TTF/OTF at path. An empty path falls
// back to the embedded Go Regular font. Any read or parse failure is fatal
// to the run — there is no silent fallback for an explicitly requested font.
func NewFontManager(path string) (*FontManager, error) {
	fontData := goregular.TTF
	if path != "" {
		var err error
		fontData, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load font %s: %w", path, err)
		}
	}

	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	return &FontManager{parsed: parsed}, nil
}

// Face returns a font.Face at the given point size and DPI.
func (fm *FontManager) Face(size, dpi float64) (font.Face, error) {
	if size <= 0 || dpi <= 0 {
		return nil, fmt.Errorf("%w: %gpt at %g dpi", ErrInvalidFontSize, size, dpi)
	}

	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return face, nil
}

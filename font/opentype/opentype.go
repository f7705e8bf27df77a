// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype parses OpenType and TrueType fonts into faces
// suitable for measuring and drawing text at any size.
package opentype

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Face is a parsed font. Sized faces made from it are independent,
// so a Face may be shared by any number of text shapers. For
// efficiency, applications should parse a font file once.
type Face struct {
	font   *opentype.Font
	family string
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return newFace(f), nil
}

// ParseCollection parses an OpenType font file, with support for
// collections. Single font files are supported, returning a slice
// with length 1.
func ParseCollection(src []byte) ([]Face, error) {
	c, err := opentype.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing font collection: %w", err)
	}
	out := make([]Face, c.NumFonts())
	for i := range out {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		out[i] = newFace(f)
	}
	return out, nil
}

func newFace(f *opentype.Font) Face {
	family, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		family = ""
	}
	return Face{font: f, family: family}
}

// Family returns the typeface family name recorded in the font, or
// the empty string.
func (f Face) Family() string {
	return f.family
}

// Sized returns a face for drawing and measuring at ppem pixels
// per em. The returned face is not safe for concurrent use.
func (f Face) Sized(ppem float32) (font.Face, error) {
	if f.font == nil {
		return nil, fmt.Errorf("opentype: face not parsed")
	}
	return opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(ppem),
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

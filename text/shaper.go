// SPDX-License-Identifier: Unlicense OR MIT

// Package text measures and draws single lines of text.
package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"tokui.org/f32"
	"tokui.org/font/opentype"
)

// Shaper measures and draws text set in a single face. Sized faces
// and measured widths are cached. A Shaper must not be used by more
// than one goroutine at a time.
type Shaper struct {
	face   opentype.Face
	faces  *lru[fixed.Int26_6, font.Face]
	widths *lru[widthKey, fixed.Int26_6]
	log    zerolog.Logger
}

// NewShaper returns a Shaper for face.
func NewShaper(face opentype.Face) *Shaper {
	return &Shaper{
		face:   face,
		faces:  newFaceCache(),
		widths: newWidthCache(),
		log:    log.Logger.With().Str("component", "text").Logger(),
	}
}

// Width returns the advance width in pixels of str set at ppem
// pixels per em.
func (s *Shaper) Width(str string, ppem float32) float32 {
	if str == "" || ppem <= 0 {
		return 0
	}
	k := widthKey{ppem: toFixed(ppem), str: str}
	if w, ok := s.widths.Get(k); ok {
		return fromFixed(w)
	}
	f := s.sized(k.ppem)
	if f == nil {
		return 0
	}
	w := font.MeasureString(f, str)
	s.widths.Put(k, w)
	return fromFixed(w)
}

// Metrics returns the metrics of the face at ppem pixels per em.
func (s *Shaper) Metrics(ppem float32) font.Metrics {
	if ppem <= 0 {
		return font.Metrics{}
	}
	f := s.sized(toFixed(ppem))
	if f == nil {
		return font.Metrics{}
	}
	return f.Metrics()
}

// Draw draws str into dst with the start of its baseline at dot.
func (s *Shaper) Draw(dst draw.Image, str string, dot f32.Point, ppem float32, c color.NRGBA) {
	if str == "" || ppem <= 0 {
		return
	}
	f := s.sized(toFixed(ppem))
	if f == nil {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f,
		Dot:  fixed.Point26_6{X: toFixed(dot.X), Y: toFixed(dot.Y)},
	}
	d.DrawString(str)
}

// Close releases the cached faces.
func (s *Shaper) Close() {
	s.faces.Clear()
	s.widths.Clear()
}

func (s *Shaper) sized(ppem fixed.Int26_6) font.Face {
	if f, ok := s.faces.Get(ppem); ok {
		return f
	}
	f, err := s.face.Sized(fromFixed(ppem))
	if err != nil {
		s.log.Error().Err(err).Float32("ppem", fromFixed(ppem)).Msg("sizing face")
		return nil
	}
	s.faces.Put(ppem, f)
	return f
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package pdf implements a layout.Renderer that draws frames as
// vector graphics and writes them as a single page PDF document.
//
// One layout unit is one typographic point, so font sizes are
// points as well.
package pdf

import (
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"tokui.org/f32"
)

// PtToMm converts points to the millimeters of a canvas.
const PtToMm = 0.352777

// Renderer draws onto a page. A Renderer must not be used by more
// than one goroutine at a time.
type Renderer struct {
	size   f32.Point
	canvas *canvas.Canvas
	ctx    *canvas.Context
	family *canvas.FontFamily
	// faces holds the faces used for measuring, by size.
	faces map[float32]*canvas.FontFace
}

// NewRenderer returns a Renderer for a page of the given size that
// sets text in the TrueType or OpenType font fontData.
func NewRenderer(size f32.Point, fontData []byte) (*Renderer, error) {
	family := canvas.NewFontFamily("tokui")
	if err := family.LoadFont(fontData, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("pdf: loading font: %w", err)
	}
	c := canvas.New(toMm(size.X), toMm(size.Y))
	ctx := canvas.NewContext(c)
	// Top left origin, like layout.
	ctx.SetCoordSystem(canvas.CartesianIV)
	return &Renderer{
		size:   size,
		canvas: c,
		ctx:    ctx,
		family: family,
		faces:  make(map[float32]*canvas.FontFace),
	}, nil
}

// Clear fills the page with c.
func (r *Renderer) Clear(c color.NRGBA) {
	r.FillRect(f32.Rectangle{Max: r.size}, c)
}

func (r *Renderer) FillRect(rect f32.Rectangle, c color.NRGBA) {
	if rect.Empty() {
		return
	}
	r.ctx.SetFillColor(c)
	r.ctx.SetStrokeColor(color.RGBA{})
	r.ctx.SetStrokeWidth(0)
	r.ctx.DrawPath(toMm(rect.Min.X), toMm(rect.Min.Y), canvas.Rectangle(toMm(rect.Dx()), toMm(rect.Dy())))
}

func (r *Renderer) OutlineRect(rect f32.Rectangle, thickness float32, c color.NRGBA) {
	if rect.Empty() || thickness <= 0 {
		return
	}
	// Strokes are centered on the path, so stroke the rectangle
	// inset by half the thickness to keep the outline inside rect.
	in := rect.Inset(thickness / 2)
	if in.Empty() {
		r.FillRect(rect, c)
		return
	}
	r.ctx.SetFillColor(color.RGBA{})
	r.ctx.SetStrokeColor(c)
	r.ctx.SetStrokeWidth(toMm(thickness))
	r.ctx.DrawPath(toMm(in.Min.X), toMm(in.Min.Y), canvas.Rectangle(toMm(in.Dx()), toMm(in.Dy())))
}

func (r *Renderer) DrawText(s string, pos f32.Point, fontSize float32, c color.NRGBA) {
	if s == "" || fontSize <= 0 {
		return
	}
	face := r.family.Face(float64(fontSize), c, canvas.FontRegular, canvas.FontNormal)
	baseline := toMm(pos.Y) + face.Metrics().Ascent
	r.ctx.DrawText(toMm(pos.X), baseline, canvas.NewTextLine(face, s, canvas.Left))
}

func (r *Renderer) MeasureTextWidth(s string, fontSize float32) float32 {
	if s == "" || fontSize <= 0 {
		return 0
	}
	face, ok := r.faces[fontSize]
	if !ok {
		face = r.family.Face(float64(fontSize), canvas.Black, canvas.FontRegular, canvas.FontNormal)
		r.faces[fontSize] = face
	}
	return float32(face.TextWidth(s) / PtToMm)
}

// WritePDF writes the page drawn so far to w.
func (r *Renderer) WritePDF(w io.Writer) error {
	writer := pdf.New(w, toMm(r.size.X), toMm(r.size.Y), nil)
	r.canvas.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("pdf: writing document: %w", err)
	}
	return nil
}

func toMm(v float32) float64 {
	return float64(v) * PtToMm
}

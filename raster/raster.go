// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a layout.Renderer that draws frames into
an in-memory RGBA image.

Geometry is scaled from dp to pixels, and font sizes from sp to
pixels, by the renderer's unit.Metric.
*/
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"tokui.org/f32"
	"tokui.org/text"
	"tokui.org/unit"
)

// Renderer draws into an *image.RGBA. A Renderer must not be used
// by more than one goroutine at a time.
type Renderer struct {
	dst    *image.RGBA
	shaper *text.Shaper
	metric unit.Metric
	vr     *vector.Rasterizer
	// bounds are the pixel bounds of the current paths, relative
	// to the target's origin.
	bounds image.Rectangle
}

// NewRenderer returns a Renderer targeting dst that sets text with
// shaper.
func NewRenderer(dst *image.RGBA, shaper *text.Shaper, m unit.Metric) *Renderer {
	b := dst.Bounds()
	return &Renderer{
		dst:    dst,
		shaper: shaper,
		metric: m,
		vr:     vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Image returns the target image.
func (r *Renderer) Image() *image.RGBA {
	return r.dst
}

// Clear fills the whole target with c, replacing its content.
func (r *Renderer) Clear(c color.NRGBA) {
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Renderer) FillRect(rect f32.Rectangle, c color.NRGBA) {
	px := r.clip(r.toPx(rect))
	if px.Empty() {
		return
	}
	r.begin(px)
	r.path(px, false)
	r.paint(c)
}

func (r *Renderer) OutlineRect(rect f32.Rectangle, thickness float32, c color.NRGBA) {
	outer := r.toPx(rect)
	inner := outer.Inset(r.metric.Dp(thickness))
	outer = r.clip(outer)
	if outer.Empty() || thickness <= 0 {
		return
	}
	r.begin(outer)
	r.path(outer, false)
	// The inner contour winds the other way and cancels the fill
	// inside the stroke.
	if inner = r.clip(inner); !inner.Empty() {
		r.path(inner, true)
	}
	r.paint(c)
}

func (r *Renderer) DrawText(s string, pos f32.Point, fontSize float32, c color.NRGBA) {
	ppem := r.metric.Sp(fontSize)
	ascent := float32(r.shaper.Metrics(ppem).Ascent) / 64
	dot := f32.Pt(r.metric.Dp(pos.X), r.metric.Dp(pos.Y)+ascent)
	r.shaper.Draw(r.dst, s, dot, ppem, c)
}

func (r *Renderer) MeasureTextWidth(s string, fontSize float32) float32 {
	return r.metric.PxToDp(r.shaper.Width(s, r.metric.Sp(fontSize)))
}

func (r *Renderer) toPx(rect f32.Rectangle) f32.Rectangle {
	return f32.Rectangle{
		Min: f32.Pt(r.metric.Dp(rect.Min.X), r.metric.Dp(rect.Min.Y)),
		Max: f32.Pt(r.metric.Dp(rect.Max.X), r.metric.Dp(rect.Max.Y)),
	}
}

// clip restricts rect to the target, relative to its origin.
func (r *Renderer) clip(rect f32.Rectangle) f32.Rectangle {
	b := r.dst.Bounds()
	return rect.Intersect(f32.Rect(0, 0, float32(b.Dx()), float32(b.Dy())))
}

// begin prepares the rasterizer for paths within the pixel bounds
// of rect.
func (r *Renderer) begin(rect f32.Rectangle) {
	r.bounds = rect.Round()
	r.vr.Reset(r.bounds.Dx(), r.bounds.Dy())
	r.vr.DrawOp = draw.Over
}

func (r *Renderer) path(rect f32.Rectangle, reverse bool) {
	rect = rect.Add(f32.Pt(-float32(r.bounds.Min.X), -float32(r.bounds.Min.Y)))
	r.vr.MoveTo(rect.Min.X, rect.Min.Y)
	if reverse {
		r.vr.LineTo(rect.Min.X, rect.Max.Y)
		r.vr.LineTo(rect.Max.X, rect.Max.Y)
		r.vr.LineTo(rect.Max.X, rect.Min.Y)
	} else {
		r.vr.LineTo(rect.Max.X, rect.Min.Y)
		r.vr.LineTo(rect.Max.X, rect.Max.Y)
		r.vr.LineTo(rect.Min.X, rect.Max.Y)
	}
	r.vr.ClosePath()
}

func (r *Renderer) paint(c color.NRGBA) {
	dst := r.bounds.Add(r.dst.Bounds().Min)
	r.vr.Draw(r.dst, dst, image.NewUniform(c), image.Point{})
}

// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/colornames"

	"tokui.org/f32"
	"tokui.org/font/gofont"
	"tokui.org/layout"
	"tokui.org/text"
	"tokui.org/unit"
)

func newRenderer(w, h int, m unit.Metric) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r := NewRenderer(img, text.NewShaper(gofont.Regular()), m)
	r.Clear(nrgba(colornames.Black))
	return r
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA(c)
}

func expect(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) {
	t.Helper()
	if got := img.RGBAAt(x, y); got != want {
		t.Errorf("pixel (%d,%d): got %v; want %v", x, y, got, want)
	}
}

func TestFillRect(t *testing.T) {
	r := newRenderer(40, 40, unit.Metric{})
	r.FillRect(f32.Rect(10, 10, 20, 20), nrgba(colornames.Red))
	img := r.Image()
	expect(t, img, 10, 10, colornames.Red)
	expect(t, img, 29, 29, colornames.Red)
	expect(t, img, 9, 20, colornames.Black)
	expect(t, img, 30, 20, colornames.Black)
}

func TestFillRectClipped(t *testing.T) {
	r := newRenderer(20, 20, unit.Metric{})
	r.FillRect(f32.Rect(-10, 15, 50, 50), nrgba(colornames.Blue))
	img := r.Image()
	expect(t, img, 0, 19, colornames.Blue)
	expect(t, img, 19, 15, colornames.Blue)
	expect(t, img, 0, 14, colornames.Black)
}

func TestFillRectSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	sub := img.SubImage(image.Rect(10, 10, 30, 30)).(*image.RGBA)
	r := NewRenderer(sub, text.NewShaper(gofont.Regular()), unit.Metric{})
	r.FillRect(f32.Rect(5, 5, 100, 2), nrgba(colornames.Red))
	expect(t, img, 15, 15, colornames.Red)
	expect(t, img, 29, 16, colornames.Red)
	expect(t, img, 14, 15, color.RGBA{})
	expect(t, img, 15, 17, color.RGBA{})
	expect(t, img, 30, 15, color.RGBA{})
}

func TestOutlineRect(t *testing.T) {
	r := newRenderer(60, 60, unit.Metric{})
	r.OutlineRect(f32.Rect(10, 10, 40, 40), 4, nrgba(colornames.White))
	img := r.Image()
	expect(t, img, 10, 30, colornames.White)
	expect(t, img, 13, 30, colornames.White)
	expect(t, img, 14, 30, colornames.Black)
	expect(t, img, 30, 30, colornames.Black)
	expect(t, img, 49, 49, colornames.White)
	expect(t, img, 50, 50, colornames.Black)
}

func TestOutlineThick(t *testing.T) {
	r := newRenderer(20, 20, unit.Metric{})
	r.OutlineRect(f32.Rect(0, 0, 10, 10), 6, nrgba(colornames.White))
	expect(t, r.Image(), 5, 5, colornames.White)
}

func TestDrawText(t *testing.T) {
	r := newRenderer(100, 50, unit.Metric{})
	r.DrawText("H", f32.Pt(10, 10), 20, nrgba(colornames.White))
	box := f32.Rect(10, 10, r.MeasureTextWidth("H", 20), 20).Round()
	inked := false
	img := r.Image()
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y) == colornames.Black {
				continue
			}
			if !(image.Point{X: x, Y: y}).In(box) {
				t.Fatalf("pixel (%d,%d) outside %v was drawn", x, y, box)
			}
			inked = true
		}
	}
	if !inked {
		t.Error("no pixels drawn")
	}
}

func TestMetric(t *testing.T) {
	r := newRenderer(40, 40, unit.Uniform(2))
	r.FillRect(f32.Rect(0, 0, 10, 10), nrgba(colornames.Red))
	img := r.Image()
	expect(t, img, 19, 19, colornames.Red)
	expect(t, img, 20, 20, colornames.Black)

	want := r.shaper.Width("Hello", 40) / 2
	if got := r.MeasureTextWidth("Hello", 20); got != want {
		t.Errorf("text width: got %v; want %v", got, want)
	}
}

func TestDrawFrame(t *testing.T) {
	r := newRenderer(800, 450, unit.Metric{})
	b := layout.NewBuilder(64)
	b.InitSize(f32.Pt(800, 450))
	b.AlignH(layout.Center)
	b.AlignV(layout.Middle)
	b.Border(2, nrgba(colornames.White))
	b.Padding(12)
	b.Column(10)
	b.Rect(100, 100, nrgba(colornames.Red))
	b.AlignH(layout.Center)
	b.Text("Hello", 20, nrgba(colornames.White))
	b.AlignHEnd()
	b.Rect(100, 100, nrgba(colornames.Blue))
	b.ColumnEnd()
	b.PaddingEnd()
	b.BorderEnd()
	b.AlignVEnd()
	b.AlignHEnd()
	b.Draw(r, f32.Point{})

	img := r.Image()
	expect(t, img, 400, 155, colornames.Red)
	expect(t, img, 400, 300, colornames.Blue)
	expect(t, img, 339, 200, colornames.White)
	expect(t, img, 10, 10, colornames.Black)
}

// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"tokui.org/f32"
	"tokui.org/font/gofont"
)

func TestWidth(t *testing.T) {
	s := NewShaper(gofont.Regular())
	defer s.Close()
	w20 := s.Width("Hello", 20)
	if w20 <= 0 {
		t.Fatalf("width of Hello: got %v", w20)
	}
	if w40 := s.Width("Hello", 40); w40 < 1.9*w20 || w40 > 2.1*w20 {
		t.Errorf("width at 40: got %v; want about %v", w40, 2*w20)
	}
	if w := s.Width("Hello", 20); w != w20 {
		t.Errorf("cached width: got %v; want %v", w, w20)
	}
	if got := s.widths.Len(); got != 2 {
		t.Errorf("cached widths: got %d; want 2", got)
	}
	if got := s.faces.Len(); got != 2 {
		t.Errorf("cached faces: got %d; want 2", got)
	}
	if w := s.Width("", 20); w != 0 {
		t.Errorf("empty string: got %v", w)
	}
	if w := s.Width("Hello", 0); w != 0 {
		t.Errorf("zero size: got %v", w)
	}
}

func TestMetrics(t *testing.T) {
	s := NewShaper(gofont.Regular())
	m := s.Metrics(20)
	if m.Ascent <= 0 || m.Ascent.Ceil() > 20 {
		t.Errorf("ascent at 20: got %v", m.Ascent)
	}
}

func TestDraw(t *testing.T) {
	s := NewShaper(gofont.Regular())
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	ascent := float32(s.Metrics(20).Ascent) / 64
	s.Draw(img, "H", f32.Pt(10, 10+ascent), 20, color.NRGBA{A: 0xff})
	w := s.Width("H", 20)
	box := f32.Rect(10, 10, w, 20).Round()
	inked := false
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y) == white {
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

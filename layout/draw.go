// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"

	"tokui.org/f32"
)

// Measurer measures text for layout.
type Measurer interface {
	// MeasureTextWidth returns the advance width of s set at
	// fontSize.
	MeasureTextWidth(s string, fontSize float32) float32
}

// Renderer draws the primitives of a frame. Positions and sizes
// are in layout units with the origin at the top left.
type Renderer interface {
	Measurer
	FillRect(r f32.Rectangle, c color.NRGBA)
	// OutlineRect strokes the inside of r with the given
	// thickness.
	OutlineRect(r f32.Rectangle, thickness float32, c color.NRGBA)
	// DrawText draws s with its top left corner at pos.
	DrawText(s string, pos f32.Point, fontSize float32, c color.NRGBA)
}

// Draw resolves the size and position of every token and draws
// the frame with r, the root placed at origin.
//
// Draw may be called any number of times for the same frame; each
// call resolves the stream from scratch.
func (b *Builder) Draw(r Renderer, origin f32.Point) {
	if len(b.tokens) == 0 {
		return
	}
	b.measure(r)
	b.paint(r, origin)
}

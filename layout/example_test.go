// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"
	"image/color"

	"github.com/rs/zerolog"

	"tokui.org/f32"
	"tokui.org/layout"
)

type printer struct{}

func (printer) FillRect(r f32.Rectangle, c color.NRGBA) {
	fmt.Println("fill", r)
}

func (printer) OutlineRect(r f32.Rectangle, thickness float32, c color.NRGBA) {
	fmt.Println("outline", r, thickness)
}

func (printer) DrawText(s string, pos f32.Point, fontSize float32, c color.NRGBA) {
	fmt.Println("text", pos, s)
}

func (printer) MeasureTextWidth(s string, fontSize float32) float32 {
	return float32(len(s)) * fontSize / 2
}

func ExampleBuilder() {
	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}

	b := layout.NewBuilder(64, layout.WithLogger(zerolog.Nop()))
	b.InitSize(f32.Pt(800, 450))
	b.AlignH(layout.Center)
	b.AlignV(layout.Middle)
	b.Padding(12)
	b.Column(10)
	b.Rect(100, 100, red)
	b.Rect(50, 50, blue)
	b.ColumnEnd()
	b.PaddingEnd()
	b.AlignVEnd()
	b.AlignHEnd()
	b.Draw(printer{}, f32.Point{})

	// Output:
	// fill (350,145)-(450,245)
	// fill (350,255)-(400,305)
}

func ExampleBuilder_Border() {
	b := layout.NewBuilder(16, layout.WithLogger(zerolog.Nop()))
	b.Init()
	b.Border(2, color.NRGBA{A: 0xff})
	b.Padding(4)
	b.Text("Hello", 20, color.NRGBA{A: 0xff})
	b.PaddingEnd()
	b.BorderEnd()
	b.Draw(printer{}, f32.Pt(10, 10))

	fmt.Println(b.Tokens()[0].Size)

	// Output:
	// outline (10,10)-(68,38) 2
	// text (14,14) Hello
	// (58,28)
}

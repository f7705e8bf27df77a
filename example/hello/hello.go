// SPDX-License-Identifier: Unlicense OR MIT

package main

// A simple frame: two squares and a greeting in a bordered column,
// centered in an 800x450 image and written to hello.png.

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tokui.org/f32"
	"tokui.org/font/gofont"
	"tokui.org/layout"
	"tokui.org/raster"
	"tokui.org/text"
	"tokui.org/unit"
)

var out = flag.String("o", "hello.png", "output file")

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.NRGBA{R: 0xe6, G: 0x29, B: 0x37, A: 0xff}
	blue  = color.NRGBA{R: 0x00, G: 0x79, B: 0xf1, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	img := image.NewRGBA(image.Rect(0, 0, 800, 450))
	shaper := text.NewShaper(gofont.Regular())
	defer shaper.Close()
	r := raster.NewRenderer(img, shaper, unit.Metric{})
	r.Clear(black)

	b := layout.NewBuilder(32)
	defer b.Release()
	b.InitSize(f32.Pt(800, 450))
	frame(b)
	b.Draw(r, f32.Point{})

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create output")
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal().Err(err).Msg("cannot encode image")
	}
	log.Info().Str("path", *out).Msg("wrote frame")
}

func frame(b *layout.Builder) {
	b.AlignH(layout.Center)
	b.AlignV(layout.Middle)
	b.Border(2, white)
	b.Padding(12)
	b.Column(10)
	b.Rect(100, 100, red)
	b.AlignH(layout.Center)
	b.Text("Hello", 20, white)
	b.AlignHEnd()
	b.Rect(100, 100, blue)
	b.ColumnEnd()
	b.PaddingEnd()
	b.BorderEnd()
	b.AlignVEnd()
	b.AlignHEnd()
}

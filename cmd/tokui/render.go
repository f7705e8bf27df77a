// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tokui.org/f32"
	"tokui.org/layout"
	"tokui.org/pdf"
	"tokui.org/raster"
	"tokui.org/script"
	"tokui.org/text"
	"tokui.org/unit"
)

// outputs names the files to write. Empty names are skipped.
type outputs struct {
	png, pdf, debug string
}

func (o outputs) empty() bool {
	return o.png == "" && o.pdf == "" && o.debug == ""
}

// render writes every requested output concurrently. Each output
// lays out the script with its own Builder.
func render(ctx context.Context, cfg Config, s *script.Script, out outputs) error {
	g, ctx := errgroup.WithContext(ctx)
	if out.png != "" || out.debug != "" {
		g.Go(func() error {
			return renderRaster(ctx, cfg, s, out)
		})
	}
	if out.pdf != "" {
		g.Go(func() error {
			return renderPDF(ctx, cfg, s, out.pdf)
		})
	}
	return g.Wait()
}

// viewport returns the size of the frame in layout units.
func viewport(cfg Config, s *script.Script) f32.Point {
	if v := s.Viewport; v != nil {
		return f32.Pt(v.Width, v.Height)
	}
	return f32.Pt(cfg.Width, cfg.Height)
}

func newBuilder(cfg Config, s *script.Script, output string) (*layout.Builder, error) {
	opts := []layout.Option{layout.WithLogger(
		log.With().Str("component", "layout").Str("output", output).Logger(),
	)}
	if cfg.MaxDepth > 0 {
		opts = append(opts, layout.WithMaxDepth(cfg.MaxDepth))
	}
	b := layout.NewBuilder(cfg.Capacity, opts...)
	if err := s.Emit(b, viewport(cfg, s)); err != nil {
		return nil, err
	}
	return b, nil
}

func renderRaster(ctx context.Context, cfg Config, s *script.Script, out outputs) error {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}
	face, err := cfg.Face()
	if err != nil {
		return err
	}
	b, err := newBuilder(cfg, s, "raster")
	if err != nil {
		return err
	}
	defer b.Release()

	size := viewport(cfg, s).Mul(cfg.Scale)
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(float64(size.X))), int(math.Ceil(float64(size.Y)))))
	shaper := text.NewShaper(face)
	defer shaper.Close()
	r := raster.NewRenderer(img, shaper, unit.Uniform(cfg.Scale))
	r.Clear(bg)
	b.Draw(r, f32.Point{})

	if err := ctx.Err(); err != nil {
		return err
	}
	if out.png != "" {
		if err := writeFile(out.png, func(w io.Writer) error {
			return png.Encode(w, img)
		}); err != nil {
			return err
		}
	}
	if out.debug != "" {
		if err := writeFile(out.debug, b.WriteDebugJSON); err != nil {
			return err
		}
	}
	return nil
}

func renderPDF(ctx context.Context, cfg Config, s *script.Script, path string) error {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}
	data, err := cfg.FontData()
	if err != nil {
		return err
	}
	b, err := newBuilder(cfg, s, "pdf")
	if err != nil {
		return err
	}
	defer b.Release()

	r, err := pdf.NewRenderer(viewport(cfg, s), data)
	if err != nil {
		return err
	}
	r.Clear(bg)
	b.Draw(r, f32.Point{})

	if err := ctx.Err(); err != nil {
		return err
	}
	return writeFile(path, r.WritePDF)
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("wrote output")
	return nil
}

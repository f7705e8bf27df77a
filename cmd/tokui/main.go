// SPDX-License-Identifier: Unlicense OR MIT

// Command tokui lays out a frame described by a layout script and
// writes it as a PNG image, a PDF document or a JSON dump of the
// resolved token stream.
//
// Usage:
//
//	tokui [-config dir] [-png out.png] [-pdf out.pdf] [-debug out.json] script.tui
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tokui.org/script"
)

var (
	configDir = flag.String("config", ".", "directory holding tokui.env")
	pngPath   = flag.String("png", "", "write the frame as a PNG image")
	pdfPath   = flag.String("pdf", "", "write the frame as a PDF document")
	debugPath = flag.String("debug", "", "write the resolved token stream as JSON")
)

const mainUsage = `usage: tokui [-config dir] [-png out.png] [-pdf out.pdf] [-debug out.json] script.tui
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "tokui: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	path := flag.Arg(0)
	if path == "" {
		return errors.New("specify a script")
	}
	out := outputs{png: *pngPath, pdf: *pdfPath, debug: *debugPath}
	if out.empty() {
		return errors.New("specify at least one of -png, -pdf or -debug")
	}
	cfg, err := LoadConfig(*configDir)
	if err != nil {
		return fmt.Errorf("cannot read config: %w", err)
	}
	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	s, err := script.Parse(path, f)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return render(ctx, cfg, s, out)
}

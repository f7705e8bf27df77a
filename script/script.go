// SPDX-License-Identifier: Unlicense OR MIT

// Package script parses layout scripts, a textual form of a frame,
// and emits them into a layout.Builder.
//
// A script is an optional viewport followed by a tree of nodes:
//
//	viewport 800 450
//	align center middle {
//		border 2 white {
//			padding 12 {
//				column 10 {
//					rect 100 100 red
//					text "Hello" 20 #ffffff
//				}
//			}
//		}
//	}
//
// Colors are #rrggbb, #rrggbbaa or SVG color names.
package script

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/image/colornames"

	"tokui.org/layout"
)

var (
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6})`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[{}]`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// Script is the root of a parsed layout script.
type Script struct {
	Pos      lexer.Position `parser:""`
	Viewport *Viewport      `parser:"@@?"`
	Nodes    []*Node        `parser:"@@*"`
}

// Viewport fixes the size of the frame root.
type Viewport struct {
	Width  float32 `parser:"'viewport' @Number"`
	Height float32 `parser:"@Number"`
}

// Node is a leaf or a scope with its children.
type Node struct {
	Pos        lexer.Position `parser:""`
	Rect       *Rect          `parser:"  @@"`
	Text       *Text          `parser:"| @@"`
	Shim       *Shim          `parser:"| @@"`
	ShimH      *ShimH         `parser:"| @@"`
	ShimV      *ShimV         `parser:"| @@"`
	Row        *Row           `parser:"| @@"`
	Column     *Column        `parser:"| @@"`
	AlignH     *AlignH        `parser:"| @@"`
	AlignV     *AlignV        `parser:"| @@"`
	Align      *Align         `parser:"| @@"`
	Padding    *Padding       `parser:"| @@"`
	Border     *Border        `parser:"| @@"`
	Background *Background    `parser:"| @@"`
}

type Rect struct {
	Width  float32 `parser:"'rect' @Number"`
	Height float32 `parser:"@Number"`
	Color  Color   `parser:"@(Color | Ident)"`
}

type Text struct {
	Text     StringLiteral `parser:"'text' @String"`
	FontSize float32       `parser:"@Number"`
	Color    Color         `parser:"@(Color | Ident)"`
}

type Shim struct {
	Width  float32 `parser:"'shim' @Number"`
	Height float32 `parser:"@Number"`
}

type ShimH struct {
	Width float32 `parser:"'shimh' @Number"`
}

type ShimV struct {
	Height float32 `parser:"'shimv' @Number"`
}

type Row struct {
	Spacing  float32 `parser:"'row' @Number"`
	Children []*Node `parser:"'{' @@* '}'"`
}

type Column struct {
	Spacing  float32 `parser:"'column' @Number"`
	Children []*Node `parser:"'{' @@* '}'"`
}

type AlignH struct {
	H        Horizontal `parser:"'alignh' @('left' | 'center' | 'right')"`
	Children []*Node    `parser:"'{' @@* '}'"`
}

type AlignV struct {
	V        Vertical `parser:"'alignv' @('top' | 'middle' | 'bottom')"`
	Children []*Node  `parser:"'{' @@* '}'"`
}

type Align struct {
	H        Horizontal `parser:"'align' @('left' | 'center' | 'right')"`
	V        Vertical   `parser:"@('top' | 'middle' | 'bottom')"`
	Children []*Node    `parser:"'{' @@* '}'"`
}

type Padding struct {
	Spacing  float32 `parser:"'padding' @Number"`
	Children []*Node `parser:"'{' @@* '}'"`
}

type Border struct {
	Thickness float32 `parser:"'border' @Number"`
	Color     Color   `parser:"@(Color | Ident)"`
	Children  []*Node `parser:"'{' @@* '}'"`
}

type Background struct {
	Color    Color   `parser:"'background' @(Color | Ident)"`
	Children []*Node `parser:"'{' @@* '}'"`
}

// Color is a captured color literal or name.
type Color color.NRGBA

// Capture implements participle.Capture.
func (c *Color) Capture(values []string) error {
	v := values[0]
	if strings.HasPrefix(v, "#") {
		n, err := strconv.ParseUint(v[1:], 16, 32)
		if err != nil {
			return fmt.Errorf("invalid color %q: %w", v, err)
		}
		if len(v) == 7 {
			n = n<<8 | 0xff
		}
		*c = Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}
		return nil
	}
	rgba, ok := colornames.Map[strings.ToLower(v)]
	if !ok {
		return fmt.Errorf("unknown color %q", v)
	}
	// Named colors are opaque, so RGBA and NRGBA agree.
	*c = Color(rgba)
	return nil
}

// Horizontal is a captured horizontal alignment.
type Horizontal layout.Horizontal

// Capture implements participle.Capture.
func (h *Horizontal) Capture(values []string) error {
	switch values[0] {
	case "left":
		*h = Horizontal(layout.Left)
	case "center":
		*h = Horizontal(layout.Center)
	case "right":
		*h = Horizontal(layout.Right)
	default:
		return fmt.Errorf("unknown horizontal alignment %q", values[0])
	}
	return nil
}

// Vertical is a captured vertical alignment.
type Vertical layout.Vertical

// Capture implements participle.Capture.
func (v *Vertical) Capture(values []string) error {
	switch values[0] {
	case "top":
		*v = Vertical(layout.Top)
	case "middle":
		*v = Vertical(layout.Middle)
	case "bottom":
		*v = Vertical(layout.Bottom)
	default:
		return fmt.Errorf("unknown vertical alignment %q", values[0])
	}
	return nil
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a script from r. The name is used in error
// positions.
func Parse(name string, r io.Reader) (*Script, error) {
	return scriptParser.Parse(name, r)
}

// ParseString parses a script from src.
func ParseString(name, src string) (*Script, error) {
	return scriptParser.ParseString(name, src)
}

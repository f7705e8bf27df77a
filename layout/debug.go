// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"encoding/json"
	"io"
)

type debugToken struct {
	Index     int        `json:"index"`
	Kind      string     `json:"kind"`
	Depth     int        `json:"depth"`
	X         float32    `json:"x"`
	Y         float32    `json:"y"`
	Width     float32    `json:"width"`
	Height    float32    `json:"height"`
	Spacing   float32    `json:"spacing,omitempty"`
	Thickness float32    `json:"thickness,omitempty"`
	Text      string     `json:"text,omitempty"`
	FontSize  float32    `json:"fontSize,omitempty"`
	Align     string     `json:"align,omitempty"`
	Color     *debugRGBA `json:"color,omitempty"`
}

type debugRGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// WriteDebugJSON writes the current frame's tokens and their
// resolved geometry to w as indented JSON. Call it after Draw.
func (b *Builder) WriteDebugJSON(w io.Writer) error {
	out := make([]debugToken, 0, len(b.tokens))
	depth := 0
	for i, t := range b.tokens {
		if t.Kind.End() && depth > 0 {
			depth--
		}
		d := debugToken{
			Index:     i,
			Kind:      t.Kind.String(),
			Depth:     depth,
			X:         t.Pos.X,
			Y:         t.Pos.Y,
			Width:     t.Size.X,
			Height:    t.Size.Y,
			Spacing:   t.Spacing,
			Thickness: t.Thickness,
			Text:      t.Text,
			FontSize:  t.FontSize,
		}
		switch t.Kind {
		case KindAlignH:
			d.Align = t.H.String()
		case KindAlignV:
			d.Align = t.V.String()
		case KindAlign:
			d.Align = t.H.String() + "," + t.V.String()
		case KindRect, KindText, KindBorder, KindBackground:
			d.Color = &debugRGBA{R: t.Color.R, G: t.Color.G, B: t.Color.B, A: t.Color.A}
		}
		if t.Kind.Begin() {
			depth++
		}
		out = append(out, d)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

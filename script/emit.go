// SPDX-License-Identifier: Unlicense OR MIT

package script

import (
	"fmt"
	"image/color"

	"tokui.org/f32"
	"tokui.org/layout"
)

// Tokens returns the number of tokens the script emits, root
// included.
func (s *Script) Tokens() int {
	return 1 + count(s.Nodes)
}

func count(nodes []*Node) int {
	n := 0
	for _, c := range nodes {
		n++
		if children, ok := c.children(); ok {
			n += 1 + count(children)
		}
	}
	return n
}

// Validate reports the first node with a negative size, or the
// first modifier wrapping more than one child.
func (s *Script) Validate() error {
	if s.Viewport != nil && (s.Viewport.Width < 0 || s.Viewport.Height < 0) {
		return fmt.Errorf("%s: negative viewport", s.Pos)
	}
	return validate(s.Nodes)
}

func validate(nodes []*Node) error {
	for _, n := range nodes {
		var dims []float32
		switch {
		case n.Rect != nil:
			dims = []float32{n.Rect.Width, n.Rect.Height}
		case n.Text != nil:
			dims = []float32{n.Text.FontSize}
		case n.Shim != nil:
			dims = []float32{n.Shim.Width, n.Shim.Height}
		case n.ShimH != nil:
			dims = []float32{n.ShimH.Width}
		case n.ShimV != nil:
			dims = []float32{n.ShimV.Height}
		case n.Padding != nil:
			dims = []float32{n.Padding.Spacing}
		case n.Border != nil:
			dims = []float32{n.Border.Thickness}
		}
		for _, d := range dims {
			if d < 0 {
				return fmt.Errorf("%s: negative size %g", n.Pos, d)
			}
		}
		if children, ok := n.children(); ok {
			if len(children) > 1 && n.Row == nil && n.Column == nil {
				return fmt.Errorf("%s: %d children in a scope that wraps one", n.Pos, len(children))
			}
			if err := validate(children); err != nil {
				return err
			}
		}
	}
	return nil
}

// Emit validates the script, starts a new frame in b and emits the
// script's token stream. The root is fixed to the script's viewport,
// or else to viewport if it is not zero, or else grows to fit the
// content. Nothing is emitted if validation fails. Scripts larger
// than b are truncated by b, which reports the dropped tokens.
func (s *Script) Emit(b *layout.Builder, viewport f32.Point) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if v := s.Viewport; v != nil {
		viewport = f32.Pt(v.Width, v.Height)
	}
	if viewport != (f32.Point{}) {
		b.InitSize(viewport)
	} else {
		b.Init()
	}
	emit(b, s.Nodes)
	return nil
}

func emit(b *layout.Builder, nodes []*Node) {
	for _, n := range nodes {
		switch {
		case n.Rect != nil:
			b.Rect(n.Rect.Width, n.Rect.Height, color.NRGBA(n.Rect.Color))
		case n.Text != nil:
			b.Text(string(n.Text.Text), n.Text.FontSize, color.NRGBA(n.Text.Color))
		case n.Shim != nil:
			b.Shim(n.Shim.Width, n.Shim.Height)
		case n.ShimH != nil:
			b.ShimH(n.ShimH.Width)
		case n.ShimV != nil:
			b.ShimV(n.ShimV.Height)
		case n.Row != nil:
			b.Row(n.Row.Spacing)
			emit(b, n.Row.Children)
			b.RowEnd()
		case n.Column != nil:
			b.Column(n.Column.Spacing)
			emit(b, n.Column.Children)
			b.ColumnEnd()
		case n.AlignH != nil:
			b.AlignH(layout.Horizontal(n.AlignH.H))
			emit(b, n.AlignH.Children)
			b.AlignHEnd()
		case n.AlignV != nil:
			b.AlignV(layout.Vertical(n.AlignV.V))
			emit(b, n.AlignV.Children)
			b.AlignVEnd()
		case n.Align != nil:
			b.Align(layout.Horizontal(n.Align.H), layout.Vertical(n.Align.V))
			emit(b, n.Align.Children)
			b.AlignEnd()
		case n.Padding != nil:
			b.Padding(n.Padding.Spacing)
			emit(b, n.Padding.Children)
			b.PaddingEnd()
		case n.Border != nil:
			b.Border(n.Border.Thickness, color.NRGBA(n.Border.Color))
			emit(b, n.Border.Children)
			b.BorderEnd()
		case n.Background != nil:
			b.Background(color.NRGBA(n.Background.Color))
			emit(b, n.Background.Children)
			b.BackgroundEnd()
		}
	}
}

// children returns the children of a scope node. It reports false
// for leaves.
func (n *Node) children() ([]*Node, bool) {
	switch {
	case n.Row != nil:
		return n.Row.Children, true
	case n.Column != nil:
		return n.Column.Children, true
	case n.AlignH != nil:
		return n.AlignH.Children, true
	case n.AlignV != nil:
		return n.AlignV.Children, true
	case n.Align != nil:
		return n.Align.Children, true
	case n.Padding != nil:
		return n.Padding.Children, true
	case n.Border != nil:
		return n.Border.Children, true
	case n.Background != nil:
		return n.Background.Children, true
	}
	return nil, false
}

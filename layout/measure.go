// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "tokui.org/f32"

const measurePass = "measure"

// measure resolves the Size of every token in one forward scan,
// folding each finished child into the innermost open scope.
func (b *Builder) measure(m Measurer) {
	root := &b.tokens[0]
	if !root.fixed {
		root.Size = f32.Point{}
	}
	b.stack.reset(scope{index: 0})
	for i := 1; i < len(b.tokens); i++ {
		t := &b.tokens[i]
		switch {
		case t.Kind.Leaf():
			t.Size = leafSize(t, m)
			b.fold(t.Size)
		case t.Kind.Begin():
			t.Size = f32.Point{}
			if !b.stack.push(scope{index: i}) {
				b.stackExceeded(measurePass, i)
			}
		default:
			if b.stack.skip() {
				t.Size = f32.Point{}
				continue
			}
			sc, ok := b.stack.pop()
			if !ok {
				b.unmatchedEnd(measurePass, i)
				continue
			}
			open := &b.tokens[sc.index]
			if open.Kind != t.Kind.Opener() {
				b.mismatchedEnd(measurePass, i, open.Kind)
			}
			// Every fold adds spacing after the child, the last one
			// included.
			if sc.children > 0 {
				switch open.Kind {
				case KindRow:
					open.Size.X -= open.Spacing
				case KindColumn:
					open.Size.Y -= open.Spacing
				}
			}
			t.Size = open.Size
			b.fold(open.Size)
		}
	}
	if b.stack.depth() > 1 {
		b.unclosed(measurePass)
	}
}

func leafSize(t *Token, m Measurer) f32.Point {
	if t.Kind == KindText {
		return f32.Point{X: m.MeasureTextWidth(t.Text, t.FontSize), Y: t.FontSize}
	}
	return t.Extent
}

// fold accumulates a child of the given size into the innermost
// open scope.
func (b *Builder) fold(size f32.Point) {
	sc := b.stack.top()
	sc.children++
	t := &b.tokens[sc.index]
	switch t.Kind {
	case KindRoot:
		if !t.fixed {
			t.Size = t.Size.Max(size)
		}
	case KindRow:
		t.Size.X += size.X + t.Spacing
		t.Size.Y = max(t.Size.Y, size.Y)
	case KindColumn:
		t.Size.Y += size.Y + t.Spacing
		t.Size.X = max(t.Size.X, size.X)
	case KindAlignH:
		t.Size.X = size.X
		t.Size.Y = max(t.Size.Y, size.Y)
	case KindAlignV:
		t.Size.Y = size.Y
		t.Size.X = max(t.Size.X, size.X)
	case KindPadding:
		t.Size.X += size.X + 2*t.Spacing
		t.Size.Y += size.Y + 2*t.Spacing
	case KindAlign, KindBorder, KindBackground:
		t.Size = size
	}
}

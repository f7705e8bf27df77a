// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "tokui.org/f32"

// paint resolves the Pos of every token in one forward scan and
// issues the draw calls. It relies on the sizes from measure,
// including those of tokens it has not visited yet.
func (b *Builder) paint(r Renderer, origin f32.Point) {
	root := &b.tokens[0]
	root.Pos = origin
	b.stack.reset(scope{index: 0, cursor: origin, slot: root.Size})
	for i := 1; i < len(b.tokens); i++ {
		t := &b.tokens[i]
		parent := b.stack.top()
		switch {
		case t.Kind.Leaf():
			t.Pos = parent.cursor
			switch t.Kind {
			case KindRect:
				r.FillRect(t.Bounds(), t.Color)
			case KindText:
				r.DrawText(t.Text, t.Pos, t.FontSize, t.Color)
			}
			b.advance(t.Size)
		case t.Kind.Begin():
			slot := b.offer(parent, t.Size)
			t.Pos = parent.cursor
			cursor := t.Pos
			switch t.Kind {
			case KindAlignH, KindAlignV, KindAlign:
				child := b.child(i)
				if t.Kind != KindAlignV {
					t.Pos.X += t.H.offset(slot.X, child.X)
				}
				if t.Kind != KindAlignH {
					t.Pos.Y += t.V.offset(slot.Y, child.Y)
				}
				cursor = t.Pos
			case KindPadding:
				cursor = t.Pos.Add(f32.Pt(t.Spacing, t.Spacing))
			case KindBorder:
				r.OutlineRect(t.Bounds(), t.Thickness, t.Color)
			case KindBackground:
				r.FillRect(t.Bounds(), t.Color)
			}
			// Overflow was reported by measure.
			b.stack.push(scope{index: i, cursor: cursor, slot: slot})
		default:
			if b.stack.skip() {
				t.Pos = parent.cursor
				continue
			}
			// Unbalanced ends were reported by measure.
			sc, ok := b.stack.pop()
			if !ok {
				continue
			}
			open := &b.tokens[sc.index]
			t.Pos = open.Pos
			b.advance(open.Size)
		}
	}
}

// advance moves the cursor of the innermost scope past a child of
// the given size. Only rows and columns have more than one child.
func (b *Builder) advance(size f32.Point) {
	sc := b.stack.top()
	t := &b.tokens[sc.index]
	switch t.Kind {
	case KindRow:
		sc.cursor.X += size.X + t.Spacing
	case KindColumn:
		sc.cursor.Y += size.Y + t.Spacing
	}
}

// offer returns the space parent gives to a child of the given
// size. Alignment scopes position their own child within it.
func (b *Builder) offer(parent *scope, size f32.Point) f32.Point {
	t := &b.tokens[parent.index]
	switch t.Kind {
	case KindRoot:
		return t.Size
	case KindRow:
		return f32.Pt(size.X, t.Size.Y)
	case KindColumn:
		return f32.Pt(t.Size.X, size.Y)
	case KindAlignH:
		return f32.Pt(size.X, parent.slot.Y)
	case KindAlignV:
		return f32.Pt(parent.slot.X, size.Y)
	}
	return size
}

// child returns the measured size of the subtree starting right
// after token i, or zero if the scope at i is empty.
func (b *Builder) child(i int) f32.Point {
	if j := i + 1; j < len(b.tokens) && !b.tokens[j].Kind.End() {
		return b.tokens[j].Size
	}
	return f32.Point{}
}

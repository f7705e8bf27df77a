// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements an immediate mode layout engine over a
flat stream of tokens.

Each frame, the program resets a Builder and emits its user
interface as a sequence of calls. Leaves (Rect, Text and the Shim
spacers) stand alone; containers (Row, Column) and modifiers
(AlignH, AlignV, Align, Padding, Border, Background) are scopes
opened by a begin call and closed by the matching End call:

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
	b.Draw(renderer, f32.Point{})

No tree is built. Draw scans the stream twice: the first scan
resolves sizes bottom up, folding each child into its innermost open
scope; the second resolves positions top down and issues draw calls
to the Renderer.

Modifiers wrap exactly one child. Rows and columns shrink to fit
their children; alignment scopes place their child within the space
offered by the enclosing scope, which for the root is the viewport
given to InitSize.

The token arena and scope stack are fixed in size at NewBuilder.
Tokens beyond the capacity are dropped, scopes nested deeper than
the stack are laid out as part of their enclosing scope, and scopes
that do not pair up are skipped. All are reported through the
Builder's logger and never abort a frame.
*/
package layout

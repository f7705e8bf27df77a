// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"

	"tokui.org/f32"
)

// Kind identifies the variant of a Token.
type Kind uint8

// Horizontal is the horizontal placement of a child within
// the space offered to it.
type Horizontal uint8

// Vertical is the vertical placement of a child within
// the space offered to it.
type Vertical uint8

const (
	KindRoot Kind = iota

	// Leaves.
	KindRect
	KindText
	KindShim
	KindShimH
	KindShimV

	// Containers.
	KindRow
	KindRowEnd
	KindColumn
	KindColumnEnd

	// Modifiers.
	KindAlignH
	KindAlignHEnd
	KindAlignV
	KindAlignVEnd
	KindAlign
	KindAlignEnd
	KindPadding
	KindPaddingEnd
	KindBorder
	KindBorderEnd
	KindBackground
	KindBackgroundEnd
)

const (
	Left Horizontal = iota
	Center
	Right
)

const (
	Top Vertical = iota
	Middle
	Bottom
)

// Token is one entry of a frame's token stream. The configuration
// fields that are meaningful depend on Kind; Size and Pos are
// resolved by Draw.
type Token struct {
	Kind Kind

	// Extent is the literal size of a Rect or Shim, or the
	// fixed viewport of a sized Root.
	Extent f32.Point
	// Spacing is the gap of a Row or Column, or the inset of
	// a Padding.
	Spacing float32
	// Thickness is the outline width of a Border.
	Thickness float32
	// Color of a Rect, Text, Border or Background.
	Color color.NRGBA
	// Text and FontSize configure a Text leaf.
	Text     string
	FontSize float32
	// H and V configure AlignH, AlignV and Align.
	H Horizontal
	V Vertical

	// Size is the resolved width and height.
	Size f32.Point
	// Pos is the resolved absolute top-left position.
	Pos f32.Point

	// fixed marks a Root whose Extent is the frame viewport.
	fixed bool
}

// Bounds returns the resolved rectangle of t.
func (t Token) Bounds() f32.Rectangle {
	return f32.Rectangle{Min: t.Pos, Max: t.Pos.Add(t.Size)}
}

// Leaf reports whether k is a primitive or spacer.
func (k Kind) Leaf() bool {
	return k >= KindRect && k <= KindShimV
}

// Begin reports whether k opens a scope.
func (k Kind) Begin() bool {
	switch k {
	case KindRow, KindColumn, KindAlignH, KindAlignV, KindAlign,
		KindPadding, KindBorder, KindBackground:
		return true
	}
	return false
}

// End reports whether k closes a scope.
func (k Kind) End() bool {
	return k >= KindRow && !k.Begin()
}

// Opener returns the begin kind closed by the end kind k. For any
// other kind it returns k.
func (k Kind) Opener() Kind {
	if k.End() {
		return k - 1
	}
	return k
}

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindRect:
		return "Rect"
	case KindText:
		return "Text"
	case KindShim:
		return "Shim"
	case KindShimH:
		return "ShimH"
	case KindShimV:
		return "ShimV"
	case KindRow:
		return "Row"
	case KindRowEnd:
		return "RowEnd"
	case KindColumn:
		return "Column"
	case KindColumnEnd:
		return "ColumnEnd"
	case KindAlignH:
		return "AlignH"
	case KindAlignHEnd:
		return "AlignHEnd"
	case KindAlignV:
		return "AlignV"
	case KindAlignVEnd:
		return "AlignVEnd"
	case KindAlign:
		return "Align"
	case KindAlignEnd:
		return "AlignEnd"
	case KindPadding:
		return "Padding"
	case KindPaddingEnd:
		return "PaddingEnd"
	case KindBorder:
		return "Border"
	case KindBorderEnd:
		return "BorderEnd"
	case KindBackground:
		return "Background"
	case KindBackgroundEnd:
		return "BackgroundEnd"
	default:
		panic("unreachable")
	}
}

func (h Horizontal) String() string {
	switch h {
	case Left:
		return "Left"
	case Center:
		return "Center"
	case Right:
		return "Right"
	default:
		panic("unreachable")
	}
}

func (v Vertical) String() string {
	switch v {
	case Top:
		return "Top"
	case Middle:
		return "Middle"
	case Bottom:
		return "Bottom"
	default:
		panic("unreachable")
	}
}

// offset returns the distance from the start of an extent of
// length space to a child of length size.
func (h Horizontal) offset(space, size float32) float32 {
	switch h {
	case Center:
		return (space - size) / 2
	case Right:
		return space - size
	}
	return 0
}

func (v Vertical) offset(space, size float32) float32 {
	switch v {
	case Middle:
		return (space - size) / 2
	case Bottom:
		return space - size
	}
	return 0
}

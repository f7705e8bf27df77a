// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tokui.org/f32"
)

// Builder accumulates the token stream of a frame. A Builder must
// not be used by more than one goroutine at a time; independent
// surfaces use independent Builders.
type Builder struct {
	// tokens is the arena. Its capacity is fixed by NewBuilder and
	// tokens[0] is the root of the current frame.
	tokens []Token
	stack  scopeStack
	// depth bounds the scope stack, root included.
	depth int
	log   zerolog.Logger
}

// Option configures a Builder.
type Option func(b *Builder)

// WithLogger directs the diagnostics of a Builder to l.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) {
		b.log = l
	}
}

// WithMaxDepth bounds the nesting of scopes, root included. Scopes
// opened beyond it are not tracked; their children are laid out by
// the innermost tracked scope.
func WithMaxDepth(depth int) Option {
	return func(b *Builder) {
		b.depth = depth
	}
}

// NewBuilder returns a Builder for frames of at most capacity
// tokens, root included. Unless limited by WithMaxDepth, the scope
// stack is bounded by the same capacity.
func NewBuilder(capacity int, opts ...Option) *Builder {
	if capacity < 1 {
		capacity = 1
	}
	b := &Builder{
		tokens: make([]Token, 0, capacity),
		depth:  capacity,
		log:    log.Logger.With().Str("component", "layout").Logger(),
	}
	for _, o := range opts {
		o(b)
	}
	b.depth = max(min(b.depth, capacity), 1)
	b.stack.entries = make([]scope, 0, b.depth)
	b.Init()
	return b
}

// Release drops the arena. The Builder must not be used afterwards.
func (b *Builder) Release() {
	b.tokens = nil
	b.stack.entries = nil
}

// Init discards the previous frame and starts a new one whose root
// grows to fit its content.
func (b *Builder) Init() {
	b.tokens = b.tokens[:0]
	b.stack.entries = b.stack.entries[:0]
	b.push(KindRoot)
}

// InitSize is like Init, but the root is fixed to the viewport size.
func (b *Builder) InitSize(size f32.Point) {
	b.Init()
	if len(b.tokens) == 0 {
		return
	}
	root := &b.tokens[0]
	root.Extent = size
	root.Size = size
	root.fixed = true
}

// Len returns the number of tokens in the current frame, root
// included.
func (b *Builder) Len() int {
	return len(b.tokens)
}

// Cap returns the maximum number of tokens of a frame.
func (b *Builder) Cap() int {
	return cap(b.tokens)
}

// Depth returns the number of scopes left open by the last pass,
// root included. It is 1 after a pass over a balanced stream.
func (b *Builder) Depth() int {
	return b.stack.depth()
}

// Tokens returns the current frame's stream. The slice aliases the
// arena and is valid until the next call to Init.
func (b *Builder) Tokens() []Token {
	return b.tokens[:len(b.tokens):len(b.tokens)]
}

// push appends a token of kind k, or returns nil if the arena is
// full.
func (b *Builder) push(k Kind) *Token {
	if len(b.tokens) == cap(b.tokens) {
		b.capacityExceeded(k)
		return nil
	}
	b.tokens = append(b.tokens, Token{Kind: k})
	return &b.tokens[len(b.tokens)-1]
}

// Rect emits a filled rectangle.
func (b *Builder) Rect(width, height float32, c color.NRGBA) {
	if t := b.push(KindRect); t != nil {
		t.Extent = f32.Pt(width, height)
		t.Color = c
	}
}

// Text emits a line of text. Its width is measured when the frame
// is drawn and its height is fontSize.
func (b *Builder) Text(s string, fontSize float32, c color.NRGBA) {
	if t := b.push(KindText); t != nil {
		t.Text = s
		t.FontSize = fontSize
		t.Color = c
	}
}

// Shim emits an invisible spacer.
func (b *Builder) Shim(width, height float32) {
	if t := b.push(KindShim); t != nil {
		t.Extent = f32.Pt(width, height)
	}
}

// ShimH emits a horizontal spacer of zero height.
func (b *Builder) ShimH(width float32) {
	if t := b.push(KindShimH); t != nil {
		t.Extent.X = width
	}
}

// ShimV emits a vertical spacer of zero width.
func (b *Builder) ShimV(height float32) {
	if t := b.push(KindShimV); t != nil {
		t.Extent.Y = height
	}
}

// Row opens a scope that lays out its children left to right,
// spacing apart.
func (b *Builder) Row(spacing float32) {
	if t := b.push(KindRow); t != nil {
		t.Spacing = spacing
	}
}

// RowEnd closes a Row.
func (b *Builder) RowEnd() { b.push(KindRowEnd) }

// Column opens a scope that lays out its children top to bottom,
// spacing apart.
func (b *Builder) Column(spacing float32) {
	if t := b.push(KindColumn); t != nil {
		t.Spacing = spacing
	}
}

// ColumnEnd closes a Column.
func (b *Builder) ColumnEnd() { b.push(KindColumnEnd) }

// AlignH opens a scope that places its child horizontally.
func (b *Builder) AlignH(h Horizontal) {
	if t := b.push(KindAlignH); t != nil {
		t.H = h
	}
}

// AlignHEnd closes an AlignH.
func (b *Builder) AlignHEnd() { b.push(KindAlignHEnd) }

// AlignV opens a scope that places its child vertically.
func (b *Builder) AlignV(v Vertical) {
	if t := b.push(KindAlignV); t != nil {
		t.V = v
	}
}

// AlignVEnd closes an AlignV.
func (b *Builder) AlignVEnd() { b.push(KindAlignVEnd) }

// Align opens a scope that places its child on both axes.
func (b *Builder) Align(h Horizontal, v Vertical) {
	if t := b.push(KindAlign); t != nil {
		t.H = h
		t.V = v
	}
}

// AlignEnd closes an Align.
func (b *Builder) AlignEnd() { b.push(KindAlignEnd) }

// Padding opens a scope that adds spacing around its child on all
// four sides.
func (b *Builder) Padding(spacing float32) {
	if t := b.push(KindPadding); t != nil {
		t.Spacing = spacing
	}
}

// PaddingEnd closes a Padding.
func (b *Builder) PaddingEnd() { b.push(KindPaddingEnd) }

// Border opens a scope that outlines the bounds of its child. The
// outline does not affect layout.
func (b *Builder) Border(thickness float32, c color.NRGBA) {
	if t := b.push(KindBorder); t != nil {
		t.Thickness = thickness
		t.Color = c
	}
}

// BorderEnd closes a Border.
func (b *Builder) BorderEnd() { b.push(KindBorderEnd) }

// Background opens a scope that fills the bounds of its child
// before the child is drawn.
func (b *Builder) Background(c color.NRGBA) {
	if t := b.push(KindBackground); t != nil {
		t.Color = c
	}
}

// BackgroundEnd closes a Background.
func (b *Builder) BackgroundEnd() { b.push(KindBackgroundEnd) }

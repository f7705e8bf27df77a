// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "errors"

// Diagnostics are logged, never returned: a frame always completes,
// with a truncated stream or best-effort geometry.
var (
	// ErrCapacityExceeded reports a token or scope that did not fit
	// the limit set by NewBuilder and was dropped.
	ErrCapacityExceeded = errors.New("layout: capacity exceeded")
	// ErrUnbalancedScope reports a scope end without a matching
	// begin, or scopes left open at the end of a pass.
	ErrUnbalancedScope = errors.New("layout: unbalanced scope")
)

func (b *Builder) capacityExceeded(k Kind) {
	b.log.Warn().
		Err(ErrCapacityExceeded).
		Stringer("kind", k).
		Int("capacity", cap(b.tokens)).
		Msg("token dropped")
}

func (b *Builder) stackExceeded(pass string, i int) {
	b.log.Warn().
		Err(ErrCapacityExceeded).
		Str("pass", pass).
		Stringer("kind", b.tokens[i].Kind).
		Int("index", i).
		Int("depth", b.stack.depth()).
		Msg("scope stack full")
}

func (b *Builder) unmatchedEnd(pass string, i int) {
	b.log.Warn().
		Err(ErrUnbalancedScope).
		Str("pass", pass).
		Stringer("kind", b.tokens[i].Kind).
		Int("index", i).
		Msg("scope end without begin")
}

func (b *Builder) mismatchedEnd(pass string, i int, open Kind) {
	b.log.Warn().
		Err(ErrUnbalancedScope).
		Str("pass", pass).
		Stringer("kind", b.tokens[i].Kind).
		Stringer("open", open).
		Int("index", i).
		Msg("scope end does not match open scope")
}

func (b *Builder) unclosed(pass string) {
	top := b.stack.top()
	b.log.Warn().
		Err(ErrUnbalancedScope).
		Str("pass", pass).
		Int("depth", b.stack.depth()).
		Stringer("kind", b.tokens[top.index].Kind).
		Int("index", top.index).
		Msg("scopes left open")
}

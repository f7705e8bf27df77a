// SPDX-License-Identifier: Unlicense OR MIT

// Package rendertest provides a recording layout.Renderer with
// deterministic text metrics for tests.
package rendertest

import (
	"fmt"
	"image/color"

	"golang.org/x/exp/slices"

	"tokui.org/f32"
)

// Op is the kind of a recorded call.
type Op uint8

const (
	OpFill Op = iota
	OpOutline
	OpText
)

// Call is one recorded draw call. For text, Rect spans the measured
// extent of the string.
type Call struct {
	Op        Op
	Rect      f32.Rectangle
	Thickness float32
	Text      string
	FontSize  float32
	Color     color.NRGBA
}

// Recorder records draw calls. Text is measured as Advance times
// the font size per rune.
type Recorder struct {
	// Advance is the width of a rune relative to the font size.
	// Zero means 0.5.
	Advance float32

	calls    []Call
	measured int
}

func (r *Recorder) FillRect(rect f32.Rectangle, c color.NRGBA) {
	r.calls = append(r.calls, Call{Op: OpFill, Rect: rect, Color: c})
}

func (r *Recorder) OutlineRect(rect f32.Rectangle, thickness float32, c color.NRGBA) {
	r.calls = append(r.calls, Call{Op: OpOutline, Rect: rect, Thickness: thickness, Color: c})
}

func (r *Recorder) DrawText(s string, pos f32.Point, fontSize float32, c color.NRGBA) {
	size := f32.Pt(r.width(s, fontSize), fontSize)
	r.calls = append(r.calls, Call{
		Op:       OpText,
		Rect:     f32.Rectangle{Min: pos, Max: pos.Add(size)},
		Text:     s,
		FontSize: fontSize,
		Color:    c,
	})
}

func (r *Recorder) MeasureTextWidth(s string, fontSize float32) float32 {
	r.measured++
	return r.width(s, fontSize)
}

func (r *Recorder) width(s string, fontSize float32) float32 {
	adv := r.Advance
	if adv == 0 {
		adv = 0.5
	}
	return float32(len([]rune(s))) * fontSize * adv
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	return slices.Clone(r.calls)
}

// Measured returns the number of text measurements requested.
func (r *Recorder) Measured() int {
	return r.measured
}

// Count returns the number of recorded calls of kind op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset discards the recorded calls.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
	r.measured = 0
}

func (o Op) String() string {
	switch o {
	case OpFill:
		return "Fill"
	case OpOutline:
		return "Outline"
	case OpText:
		return "Text"
	default:
		panic("unreachable")
	}
}

func (c Call) String() string {
	switch c.Op {
	case OpOutline:
		return fmt.Sprintf("%v%v/%g", c.Op, c.Rect, c.Thickness)
	case OpText:
		return fmt.Sprintf("%v%v %q", c.Op, c.Rect, c.Text)
	default:
		return fmt.Sprintf("%v%v", c.Op, c.Rect)
	}
}

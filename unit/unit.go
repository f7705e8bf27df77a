// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Layout geometry is expressed in device independent pixels, or dp,
and font sizes in scaled pixels, or sp. An sp is like dp with text
scaling applied. Renderers convert both to pixels, px, of the
target surface with a Metric.
*/
package unit

// Metric converts device independent values to pixels. The zero
// Metric maps one dp and one sp to one pixel.
type Metric struct {
	// PxPerDp is the device-dependent density for dp values.
	PxPerDp float32
	// PxPerSp is the device-dependent density for sp values.
	PxPerSp float32
}

// Dp converts v dp to pixels.
func (c Metric) Dp(v float32) float32 {
	return v * nonZero(c.PxPerDp)
}

// Sp converts v sp to pixels.
func (c Metric) Sp(v float32) float32 {
	return v * nonZero(c.PxPerSp)
}

// PxToDp converts v px to dp.
func (c Metric) PxToDp(v float32) float32 {
	return v / nonZero(c.PxPerDp)
}

// Uniform returns a Metric with the same density for dp and sp.
func Uniform(pxPerDp float32) Metric {
	return Metric{PxPerDp: pxPerDp, PxPerSp: pxPerDp}
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"tokui.org/unit"
)

func TestMetric(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}
	if got, want := m.Dp(5), float32(10); got != want {
		t.Errorf("Dp conversion mismatch %v != %v", got, want)
	}
	if got, want := m.Sp(5), float32(15); got != want {
		t.Errorf("Sp conversion mismatch %v != %v", got, want)
	}
	if got, want := m.PxToDp(m.Dp(5)), float32(5); got != want {
		t.Errorf("PxToDp conversion mismatch %v != %v", got, want)
	}
}

func TestZeroMetric(t *testing.T) {
	var m unit.Metric
	if got := m.Dp(7); got != 7 {
		t.Errorf("zero metric scaled dp: %v", got)
	}
	if got := unit.Uniform(2).Sp(3); got != 6 {
		t.Errorf("uniform metric: %v", got)
	}
}

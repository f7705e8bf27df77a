// SPDX-License-Identifier: Unlicense OR MIT

package gofont

import "testing"

func TestFaces(t *testing.T) {
	if got := Regular().Family(); got != "Go" {
		t.Errorf("regular family: %q", got)
	}
	if got := Mono().Family(); got != "Go Mono" {
		t.Errorf("mono family: %q", got)
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package opentype

import (
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParse(t *testing.T) {
	face, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := face.Family(), "Go"; got != want {
		t.Errorf("family: got %q, want %q", got, want)
	}
	small, err := face.Sized(10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := face.Sized(40)
	if err != nil {
		t.Fatal(err)
	}
	ws, wl := font.MeasureString(small, "Hello"), font.MeasureString(large, "Hello")
	if ws <= 0 || wl <= 3*ws {
		t.Errorf("advance does not scale with size: %v at 10, %v at 40", ws, wl)
	}
}

func TestParseCollection(t *testing.T) {
	faces, err := ParseCollection(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if len(faces) != 1 {
		t.Errorf("got %d faces for a single font file, want 1", len(faces))
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("parsing garbage succeeded")
	}
	if _, err := (Face{}).Sized(12); err == nil {
		t.Error("zero Face produced a sized face")
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts as parsed faces.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"tokui.org/font/opentype"
)

var (
	regOnce  sync.Once
	reg      opentype.Face
	monoOnce sync.Once
	mono     opentype.Face
)

// Regular returns the Go regular face.
func Regular() opentype.Face {
	regOnce.Do(func() {
		reg = mustParse(goregular.TTF)
	})
	return reg
}

// Mono returns the Go mono face.
func Mono() opentype.Face {
	monoOnce.Do(func() {
		mono = mustParse(gomono.TTF)
	})
	return mono
}

func mustParse(src []byte) opentype.Face {
	face, err := opentype.Parse(src)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	return face
}

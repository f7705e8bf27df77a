// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Config{
		Environment: "production",
		Capacity:    1024,
		MaxDepth:    64,
		Width:       800,
		Height:      450,
		Scale:       1,
		Font:        "regular",
		Background:  "black",
	}, cfg)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	env := "TOKUI_CAPACITY=64\nTOKUI_SCALE=2\nTOKUI_FONT=mono\nTOKUI_BACKGROUND=\"#102030\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tokui.env"), []byte(env), 0o644))
	t.Setenv("TOKUI_WIDTH", "640")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Capacity)
	require.Equal(t, float32(2), cfg.Scale)
	require.Equal(t, float32(640), cfg.Width)
	require.Equal(t, float32(450), cfg.Height)

	bg, err := cfg.BackgroundColor()
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, bg)

	data, err := cfg.FontData()
	require.NoError(t, err)
	require.Equal(t, gomono.TTF, data)
	face, err := cfg.Face()
	require.NoError(t, err)
	require.Equal(t, "Go Mono", face.Family())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"capacity", "TOKUI_CAPACITY", "0"},
		{"max depth", "TOKUI_MAX_DEPTH", "0"},
		{"width", "TOKUI_WIDTH", "-1"},
		{"scale", "TOKUI_SCALE", "0"},
		{"background", "TOKUI_BACKGROUND", "nocolor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig(t.TempDir())
			require.Error(t, err)
		})
	}
}

func TestFontFile(t *testing.T) {
	cfg := Config{Font: filepath.Join(t.TempDir(), "missing.ttf")}
	_, err := cfg.FontData()
	require.Error(t, err)
	_, err = cfg.Face()
	require.Error(t, err)

	cfg.Font = filepath.Join(t.TempDir(), "go.ttf")
	require.NoError(t, os.WriteFile(cfg.Font, goregular.TTF, 0o644))
	face, err := cfg.Face()
	require.NoError(t, err)
	require.Equal(t, "Go", face.Family())

	require.NoError(t, os.WriteFile(cfg.Font, []byte("not a font"), 0o644))
	_, err = cfg.Face()
	require.Error(t, err)
}

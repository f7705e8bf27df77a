// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"tokui.org/font/gofont"
	"tokui.org/font/opentype"
	"tokui.org/script"
)

// Config is read from tokui.env in the config directory and from
// the environment, which takes precedence.
type Config struct {
	Environment string  `mapstructure:"TOKUI_ENVIRONMENT"`
	Capacity    int     `mapstructure:"TOKUI_CAPACITY"`
	MaxDepth    int     `mapstructure:"TOKUI_MAX_DEPTH"`
	Width       float32 `mapstructure:"TOKUI_WIDTH"`
	Height      float32 `mapstructure:"TOKUI_HEIGHT"`
	Scale       float32 `mapstructure:"TOKUI_SCALE"`
	Font        string  `mapstructure:"TOKUI_FONT"`
	Background  string  `mapstructure:"TOKUI_BACKGROUND"`
}

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("tokui")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("TOKUI_ENVIRONMENT", "production")
	v.SetDefault("TOKUI_CAPACITY", 1024)
	v.SetDefault("TOKUI_MAX_DEPTH", 64)
	v.SetDefault("TOKUI_WIDTH", 800)
	v.SetDefault("TOKUI_HEIGHT", 450)
	v.SetDefault("TOKUI_SCALE", 1)
	v.SetDefault("TOKUI_FONT", "regular")
	v.SetDefault("TOKUI_BACKGROUND", "black")

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	err = config.validate()
	return
}

func (c *Config) validate() error {
	switch {
	case c.Capacity < 1:
		return fmt.Errorf("invalid capacity %d", c.Capacity)
	case c.MaxDepth < 1:
		return fmt.Errorf("invalid max depth %d", c.MaxDepth)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid viewport %gx%g", c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("invalid scale %g", c.Scale)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses the configured background.
func (c *Config) BackgroundColor() (color.NRGBA, error) {
	var col script.Color
	if err := col.Capture([]string{c.Background}); err != nil {
		return color.NRGBA{}, fmt.Errorf("background: %w", err)
	}
	return color.NRGBA(col), nil
}

// FontData returns the configured font file: the Go regular or
// mono font, or a TrueType or OpenType file.
func (c *Config) FontData() ([]byte, error) {
	switch c.Font {
	case "", "regular":
		return goregular.TTF, nil
	case "mono":
		return gomono.TTF, nil
	}
	data, err := os.ReadFile(c.Font)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	return data, nil
}

// Face returns the configured font parsed for rasterization. Font
// files may be collections.
func (c *Config) Face() (opentype.Face, error) {
	switch c.Font {
	case "", "regular":
		return gofont.Regular(), nil
	case "mono":
		return gofont.Mono(), nil
	}
	data, err := c.FontData()
	if err != nil {
		return opentype.Face{}, err
	}
	// Collections are rendered with their first font, as in PDF
	// output.
	faces, err := opentype.ParseCollection(data)
	if err != nil {
		return opentype.Face{}, err
	}
	if len(faces) == 0 {
		return opentype.Face{}, fmt.Errorf("%s: no fonts", c.Font)
	}
	return faces[0], nil
}

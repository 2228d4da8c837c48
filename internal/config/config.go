// Package config loads editor settings from a TOML file and can watch
// the file for live reload.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/vire-editor/vire/internal/renderer/core"
)

// ParseError wraps a TOML decoding failure with the file it came from.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Config is the full editor configuration.
type Config struct {
	// TickRateMS is how long the event loop waits for input before
	// emitting an idle tick, in milliseconds.
	TickRateMS int `toml:"tick_rate_ms"`

	Log       Log       `toml:"log"`
	StatusBar StatusBar `toml:"status_bar"`
}

// Log configures the log sink.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File is the log file path; empty disables logging.
	File string `toml:"file"`
}

// StatusBar holds the bar colors as "#rrggbb" strings.
type StatusBar struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		TickRateMS: 250,
		Log: Log{
			Level: "info",
		},
		StatusBar: StatusBar{
			Foreground: "#3f3f3f",
			Background: "#efefef",
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file
// is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// TickRate returns the tick rate as a duration, falling back to the
// default for non-positive values.
func (c Config) TickRate() time.Duration {
	if c.TickRateMS <= 0 {
		c.TickRateMS = Default().TickRateMS
	}
	return time.Duration(c.TickRateMS) * time.Millisecond
}

// StatusBarStyle converts the configured colors into a render style.
// Unparseable colors fall back to the inverted default style.
func (c Config) StatusBarStyle() core.Style {
	fg, errFg := ParseColor(c.StatusBar.Foreground)
	bg, errBg := ParseColor(c.StatusBar.Background)
	if errFg != nil || errBg != nil {
		return core.DefaultStyle().Invert()
	}
	return core.NewStyle(fg, bg)
}

// ParseColor decodes a "#rrggbb" hex string into a color.
func ParseColor(s string) (core.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return core.Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return core.Color{}, fmt.Errorf("color %q: %w", s, err)
	}

	return core.RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

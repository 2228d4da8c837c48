package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vire-editor/vire/internal/renderer/core"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vire.toml")
	content := `
tick_rate_ms = 100

[log]
level = "debug"
file = "/tmp/vire.log"

[status_bar]
foreground = "#000000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickRateMS != 100 {
		t.Errorf("TickRateMS = %d, want 100", cfg.TickRateMS)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/vire.log" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.StatusBar.Foreground != "#000000" {
		t.Errorf("Foreground = %q", cfg.StatusBar.Foreground)
	}
	// Keys absent from the file keep their defaults.
	if cfg.StatusBar.Background != Default().StatusBar.Background {
		t.Errorf("Background = %q, want default", cfg.StatusBar.Background)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vire.toml")
	if err := os.WriteFile(path, []byte("tick_rate_ms = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load: %v, want ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, path)
	}
}

func TestTickRate(t *testing.T) {
	cfg := Config{TickRateMS: 100}
	if got := cfg.TickRate(); got != 100*time.Millisecond {
		t.Errorf("TickRate = %v, want 100ms", got)
	}

	cfg.TickRateMS = 0
	if got := cfg.TickRate(); got != 250*time.Millisecond {
		t.Errorf("zero TickRate = %v, want default 250ms", got)
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("#3f3fef")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if got != core.RGBColor(0x3f, 0x3f, 0xef) {
		t.Errorf("color = %+v", got)
	}

	for _, bad := range []string{"", "3f3f3f", "#3f3", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) did not fail", bad)
		}
	}
}

func TestStatusBarStyleFallsBackToInverted(t *testing.T) {
	cfg := Default()
	cfg.StatusBar.Foreground = "nonsense"

	if got := cfg.StatusBarStyle(); got != core.DefaultStyle().Invert() {
		t.Errorf("style = %+v, want inverted default", got)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vire.toml")
	if err := os.WriteFile(path, []byte("tick_rate_ms = 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 1)
	w, err := Watch(path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("tick_rate_ms = 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.TickRateMS != 42 {
			t.Errorf("reloaded TickRateMS = %d, want 42", cfg.TickRateMS)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within timeout")
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "chiindii" {
		t.Errorf("expected theme chiindii, got %s", cfg.Theme)
	}
	if cfg.Size().Degenerate() {
		t.Error("default viewport should be drawable")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flightdeck.yaml")
	data := []byte("viewport:\n  width: 300\n  height: 300\ntheme: retro\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Viewport.Width != 300 || cfg.Viewport.Height != 300 {
		t.Errorf("unexpected viewport %+v", cfg.Viewport)
	}
	if cfg.Theme != "retro" {
		t.Errorf("expected theme retro, got %s", cfg.Theme)
	}
	if cfg.FrameRate != DefaultFrameRate {
		t.Errorf("expected default frame rate, got %d", cfg.FrameRate)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
}

func TestLoadRejectsBadViewport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("viewport:\n  width: 0\n  height: 200\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("expected ErrInvalidViewport, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.ApplyPreset("ipad")
	cfg.Terminal.Scale = 3

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		want error
	}{
		{"ok", func(*Config) {}, nil},
		{"zero rate", func(c *Config) { c.FrameRate = 0 }, ErrInvalidRate},
		{"negative height", func(c *Config) { c.Viewport.Height = -1 }, ErrInvalidViewport},
		{"largest viewport", func(c *Config) { c.Viewport = ViewportConfig{Width: MaxViewport, Height: MaxViewport} }, nil},
		{"huge width", func(c *Config) { c.Viewport.Width = 1e6 }, ErrInvalidViewport},
		{"huge height", func(c *Config) { c.Viewport.Height = MaxViewport + 1 }, ErrInvalidViewport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Log.Level = "chatty"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}

	cfg = DefaultConfig()
	cfg.Terminal.Scale = 0
	cfg.LayoutCache = -1
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Terminal.Scale != DefaultTermScale || cfg.LayoutCache != DefaultLayoutCache {
		t.Error("expected defaults to be restored")
	}
}

func TestPresets(t *testing.T) {
	vp, ok := GetPreset("square")
	if !ok {
		t.Fatal("expected square preset")
	}
	if vp.Width != 300 || vp.Height != 300 {
		t.Errorf("unexpected square preset %+v", vp)
	}

	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected no preset")
	}

	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}

	cfg := DefaultConfig()
	if cfg.ApplyPreset("nonexistent") {
		t.Error("ApplyPreset should fail for unknown name")
	}
	if cfg.Viewport.Width != DefaultWidth {
		t.Error("failed ApplyPreset changed the viewport")
	}
}

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/log"
)

const (
	DefaultWidth       = 667.0
	DefaultHeight      = 375.0
	DefaultTheme       = "chiindii"
	DefaultFrameRate   = 60
	DefaultDataDir     = ".flightdeck"
	DefaultLogLevel    = "info"
	DefaultLayoutCache = 4
	DefaultTermScale   = 2.0

	// MaxViewport bounds each side so raster exports stay allocatable.
	MaxViewport = 16384.0
)

var (
	ErrInvalidViewport = errors.New("config: viewport sides must be positive and at most 16384")
	ErrInvalidRate     = errors.New("config: frame rate must be positive")
)

type Config struct {
	Viewport    ViewportConfig `yaml:"viewport"`
	Theme       string         `yaml:"theme"`
	FrameRate   int            `yaml:"frame_rate"`
	DataDir     string         `yaml:"data_dir"`
	LayoutCache int            `yaml:"layout_cache"`
	Log         LogConfig      `yaml:"log"`
	Terminal    TerminalConfig `yaml:"terminal"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

type TerminalConfig struct {
	// Scale is how many panel units one braille dot covers.
	Scale float64 `yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Viewport:    ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Theme:       DefaultTheme,
		FrameRate:   DefaultFrameRate,
		DataDir:     DefaultDataDir,
		LayoutCache: DefaultLayoutCache,
		Log:         LogConfig{Level: DefaultLogLevel},
		Terminal:    TerminalConfig{Scale: DefaultTermScale},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Size().Degenerate() || c.Viewport.Width > MaxViewport || c.Viewport.Height > MaxViewport {
		return ErrInvalidViewport
	}
	if c.FrameRate <= 0 {
		return ErrInvalidRate
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Terminal.Scale <= 0 {
		c.Terminal.Scale = DefaultTermScale
	}
	if c.LayoutCache <= 0 {
		c.LayoutCache = DefaultLayoutCache
	}
	return nil
}

func (c *Config) Size() geom.Size {
	return geom.Sz(c.Viewport.Width, c.Viewport.Height)
}

// LogDir defaults to the data directory.
func (c *Config) LogDir() string {
	if c.Log.Dir != "" {
		return c.Log.Dir
	}
	return c.DataDir
}

// Package cli binds the flags both flightdeck binaries share and turns
// them into a validated configuration, a logger and a ready panel.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/san-kum/flightdeck/internal/config"
	"github.com/san-kum/flightdeck/internal/log"
	"github.com/san-kum/flightdeck/internal/panel"
	"github.com/san-kum/flightdeck/internal/storage"
	"github.com/san-kum/flightdeck/internal/viz"
)

type Flags struct {
	ConfigFile string
	DataDir    string
	Preset     string
	Theme      string
	LogLevel   string
	Width      float64
	Height     float64
}

// Register adds the shared flags as persistent flags of root.
func (f *Flags) Register(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.StringVar(&f.ConfigFile, "config", "", "config file path (yaml)")
	pf.StringVar(&f.DataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&f.Preset, "preset", "", "viewport preset")
	pf.StringVar(&f.Theme, "theme", config.DefaultTheme, "color theme")
	pf.StringVar(&f.LogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.Float64Var(&f.Width, "width", config.DefaultWidth, "viewport width")
	pf.Float64Var(&f.Height, "height", config.DefaultHeight, "viewport height")
}

// Resolve loads the config file, applies a preset and then any flag the
// user set explicitly.
func (f *Flags) Resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(f.ConfigFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if f.Preset != "" && !cfg.ApplyPreset(f.Preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.Preset, config.ListPresets())
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = f.DataDir
	}
	if flags.Changed("theme") {
		cfg.Theme = f.Theme
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if flags.Changed("width") {
		cfg.Viewport.Width = f.Width
	}
	if flags.Changed("height") {
		cfg.Viewport.Height = f.Height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := viz.GetTheme(cfg.Theme); err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, viz.ThemeNames())
	}
	return cfg, nil
}

// Theme returns the configured theme. Resolve has already checked it.
func Theme(cfg *config.Config) viz.Theme {
	t, _ := viz.GetTheme(cfg.Theme)
	return t
}

func NewLogger(cfg *config.Config) *log.Logger {
	return log.New(cfg.Log.Level, cfg.LogDir())
}

func NewPanel(cfg *config.Config, lg *log.Logger) *panel.Panel {
	return panel.New(cfg.Size(),
		panel.WithLogger(lg),
		panel.WithLayoutCache(cfg.LayoutCache))
}

// SaveSession stores a recorded session under the data directory.
func SaveSession(cfg *config.Config, meta storage.SessionMetadata, rec *storage.Recorder, lg *log.Logger) (string, error) {
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return "", err
	}
	if meta.Theme == "" {
		meta.Theme = cfg.Theme
	}
	id, err := st.Save(meta, rec.Samples())
	if err != nil {
		lg.Error("session not saved", slog.Any("error", err))
		return "", err
	}
	lg.Info("session saved", slog.String("id", id), slog.Int("samples", rec.Len()))
	return id, nil
}

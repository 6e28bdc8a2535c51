package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/flightdeck/internal/analysis"
	"github.com/san-kum/flightdeck/internal/cli"
	"github.com/san-kum/flightdeck/internal/config"
	"github.com/san-kum/flightdeck/internal/export"
	"github.com/san-kum/flightdeck/internal/gesture"
	"github.com/san-kum/flightdeck/internal/gui"
	"github.com/san-kum/flightdeck/internal/panel"
	"github.com/san-kum/flightdeck/internal/storage"
	"github.com/san-kum/flightdeck/internal/tui"
	"github.com/san-kum/flightdeck/internal/viz"
)

var (
	flags cli.Flags

	record bool
	out    string
	scale  float64

	throttle int
	pitch    int
	roll     int
	press0   bool
	press1   bool
)

// main registers the flightdeck commands and opens the desktop window when
// no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "flightdeck",
		Short: "touch flight control panel",
		RunE:  runGUI,
	}
	flags.Register(rootCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "fly from a desktop window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&record, "record", false, "record the session")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "fly from the terminal with the mouse",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().BoolVar(&record, "record", false, "record the session")
	tuiCmd.Flags().Float64Var(&scale, "scale", 0, "panel units per braille dot (default from config)")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to svg, png or webp",
		Args:  cobra.NoArgs,
		RunE:  renderFrame,
	}
	renderCmd.Flags().StringVar(&out, "out", "frame.svg", "output file (.svg, .png, .webp)")
	renderCmd.Flags().IntVar(&throttle, "throttle", 0, "throttle step")
	renderCmd.Flags().IntVar(&pitch, "pitch", 0, "pitch step")
	renderCmd.Flags().IntVar(&roll, "roll", 0, "roll step")
	renderCmd.Flags().BoolVar(&press0, "press0", false, "takeoff button pressed")
	renderCmd.Flags().BoolVar(&press1, "press1", false, "menu button pressed")

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "print the touch regions for the viewport",
		Args:  cobra.NoArgs,
		RunE:  printLayout,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "play a gesture script headlessly",
		Args:  cobra.ExactArgs(1),
		RunE:  replayScript,
	}
	replayCmd.Flags().BoolVar(&record, "record", false, "record the session")
	replayCmd.Flags().StringVar(&out, "out", "", "write the final frame (.svg, .png, .webp)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded sessions",
		RunE:  listSessions,
	}

	showCmd := &cobra.Command{
		Use:   "show [session_id]",
		Short: "show session metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showSession,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [session_id]",
		Short: "plot throttle, pitch and roll over a session",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSession,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [session_id]",
		Short: "Report input oscillation and attitude occupancy",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeSession,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [session_id]",
		Short: "export session states to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd)
			if err != nil {
				return err
			}
			return storage.New(cfg.DataDir).CopyStates(args[0], os.Stdout)
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [session_id]",
		Short: "export session events to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd)
			if err != nil {
				return err
			}
			return storage.New(cfg.DataDir).ExportJSON(args[0], os.Stdout)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list viewport presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				vp, _ := config.GetPreset(name)
				fmt.Printf("  %-18s %4.0f x %.0f\n", name, vp.Width, vp.Height)
			}
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range viz.Themes {
				fmt.Printf("  %-10s %s %s %s\n", t.Name, t.Background, t.Normal, t.Highlight)
			}
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd)
			if err != nil {
				return err
			}
			return config.Save(args[0], cfg)
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, renderCmd, layoutCmd, replayCmd, listCmd, showCmd, plotCmd,
		analyzeCmd, exportCSVCmd, exportJSONCmd, presetsCmd, themesCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Resolve(cmd)
	if err != nil {
		return err
	}
	lg := cli.NewLogger(cfg)
	p := cli.NewPanel(cfg, lg)

	var rec *storage.Recorder
	if record {
		rec = storage.NewRecorder(nil)
		rec.Attach(p)
	}

	gui.Run(p, gui.Options{
		Size:      cfg.Size(),
		Theme:     cli.Theme(cfg),
		FrameRate: cfg.FrameRate,
		Logger:    lg,
	})

	if rec == nil {
		return nil
	}
	id, err := cli.SaveSession(cfg, storage.SessionMetadata{
		Source: "gui",
		Width:  p.Size().W,
		Height: p.Size().H,
	}, rec, lg)
	if err != nil {
		return err
	}
	fmt.Printf("session saved: %s\n", id)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("scale") {
		cfg.Terminal.Scale = scale
	}
	lg := cli.NewLogger(cfg)
	p := cli.NewPanel(cfg, lg)

	var rec *storage.Recorder
	if record {
		rec = storage.NewRecorder(nil)
		rec.Attach(p)
	}

	if err := tui.Run(p, tui.Options{Theme: cli.Theme(cfg), Scale: cfg.Terminal.Scale, Logger: lg}); err != nil {
		return err
	}

	if rec == nil {
		return nil
	}
	id, err := cli.SaveSession(cfg, storage.SessionMetadata{
		Source: "tui",
		Width:  p.Size().W,
		Height: p.Size().H,
	}, rec, lg)
	if err != nil {
		return err
	}
	fmt.Printf("session saved: %s\n", id)
	return nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Resolve(cmd)
	if err != nil {
		return err
	}

	s := panel.State{Throttle: throttle, Pitch: pitch, Roll: roll}
	s.Pressed[panel.ButtonTakeoff] = press0
	s.Pressed[panel.ButtonMenu] = press1
	if !s.Valid() {
		return fmt.Errorf("steps must be within [%d, %d]: %s", panel.MinStep, panel.MaxStep, s)
	}

	size := cfg.Size()
	prims := panel.Render(s, panel.ComputeLayout(size), size)
	if err := export.WriteFrame(out, prims, size, cli.Theme(cfg).Palette()); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d primitives)\n", out, len(prims))
	return nil
}

func printLayout(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Resolve(cmd)
	if err != nil {
		return err
	}
	l := panel.ComputeLayout(cfg.Size())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tINDEX\tX\tY\tW\tH")

	c := l.Horizon
	fmt.Fprintf(w, "horizon\t-\t%.0f\t%.0f\tr=%.0f\t\n", c.Center.X, c.Center.Y, c.Radius)
	for i := panel.MaxStep; i >= panel.MinStep; i-- {
		r, _ := l.ThrottleCell(i)
		fmt.Fprintf(w, "throttle\t%+d\t%.0f\t%.0f\t%.0f\t%.0f\n", i, r.Min.X, r.Min.Y, r.W, r.H)
	}
	for _, i := range []int{panel.MinStep, 0, panel.MaxStep} {
		r, _ := l.AttitudeCell(i, i)
		fmt.Fprintf(w, "attitude\t%+d,%+d\t%.0f\t%.0f\t%.0f\t%.0f\n", i, i, r.Min.X, r.Min.Y, r.W, r.H)
	}
	for i, b := range l.Buttons {
		fmt.Fprintf(w, "button\t%d\t%.0f\t%.0f\tr=%.0f\t\n", i, b.Center.X, b.Center.Y, b.Radius)
	}
	return w.Flush()
}

func replayScript(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Resolve(cmd)
	if err != nil {
		return err
	}
	script, err := gesture.Load(args[0])
	if err != nil {
		return err
	}

	lg := cli.NewLogger(cfg)
	p := cli.NewPanel(cfg, lg)

	rec := storage.NewRecorder(storage.StepClock(time.Now(), time.Second/time.Duration(cfg.FrameRate)))
	rec.Attach(p)

	fmt.Printf("script: %s (%d steps)\n\n", script.Name, len(script.Steps))
	for i, o := range gesture.Play(p, script) {
		mark := " "
		if o.Changed {
			mark = "*"
		}
		at := "-"
		if pt, ok := o.Event.Point(); ok {
			at = fmt.Sprintf("%.0f,%.0f", pt.X, pt.Y)
		}
		fmt.Printf("%3d %s %-5s %-9s %s\n", i, mark, o.Event.Phase, at, o.State)
	}

	if out != "" {
		if err := export.WriteFrame(out, p.Render(), p.Size(), cli.Theme(cfg).Palette()); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", out)
	}

	if record {
		id, err := cli.SaveSession(cfg, storage.SessionMetadata{
			Source: "replay",
			Width:  p.Size().W,
			Height: p.Size().H,
			Script: script.Name,
		}, rec, lg)
		if err != nil {
			return err
		}
		fmt.Printf("session saved: %s\n", id)
	}
	return nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Resolve(cmd)
	if err != nil {
		return err
	}
	sessions, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tTIME\tVIEWPORT\tSAMPLES\tDURATION")

	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0fx%.0f\t%.0f\t%.2fs\n",
			s.ID,
			s.Source,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Width, s.Height,
			s.Metrics["samples"],
			s.Metrics["duration"],
		)
	}

	return w.Flush()
}

func showSession(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Resolve(cmd)
	if err != nil {
		return err
	}
	meta, err := storage.New(cfg.DataDir).Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotSession(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Resolve(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return errors.New("no data to plot")
	}

	series := make([][]float64, 3)
	for _, s := range states {
		series[0] = append(series[0], float64(s.Throttle))
		series[1] = append(series[1], float64(s.Pitch))
		series[2] = append(series[2], float64(s.Roll))
	}

	fmt.Printf("session: %s\n", args[0])
	fmt.Printf("samples: %d\n\n", len(states))

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.LowerBound(panel.MinStep),
		asciigraph.UpperBound(panel.MaxStep),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption("throttle (red)  pitch (green)  roll (blue)"),
	)
	fmt.Println(graph)
	return nil
}

func analyzeSession(cmd *cobra.Command, args []string) error {
	cfg, err := flags.Resolve(cmd)
	if err != nil {
		return err
	}
	states, times, err := storage.New(cfg.DataDir).LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return errors.New("no data to analyze")
	}

	axes := []struct {
		name string
		get  func(panel.State) int
	}{
		{"throttle", func(s panel.State) int { return s.Throttle }},
		{"pitch", func(s panel.State) int { return s.Pitch }},
		{"roll", func(s panel.State) int { return s.Roll }},
	}

	rate := float64(cfg.FrameRate)
	fmt.Printf("session: %s\n\n", args[0])
	for _, ax := range axes {
		values := make([]float64, len(states))
		for i, s := range states {
			values[i] = float64(ax.get(s))
		}
		if hz, ok := analysis.DominantFrequency(times, values, rate); ok {
			fmt.Printf("%-9s dominant %.2f Hz\n", ax.name, hz)
		} else {
			fmt.Printf("%-9s steady\n", ax.name)
		}
	}

	fmt.Println("\nattitude:")
	fmt.Print(analysis.NewAttitudeMap(states))
	return nil
}

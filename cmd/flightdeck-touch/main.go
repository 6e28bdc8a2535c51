package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/flightdeck/internal/cli"
	"github.com/san-kum/flightdeck/internal/storage"
	"github.com/san-kum/flightdeck/internal/touch"
)

var (
	flags  cli.Flags
	record bool
)

// main opens the ebiten touch window. It lives apart from the flightdeck
// binary so the two GLFW builds are never linked together.
func main() {
	rootCmd := &cobra.Command{
		Use:   "flightdeck-touch",
		Short: "touch flight control panel (ebiten)",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	flags.Register(rootCmd)
	rootCmd.Flags().BoolVar(&record, "record", false, "record the session")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
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

	if err := touch.Run(p, touch.Options{
		Size:   cfg.Size(),
		Theme:  cli.Theme(cfg),
		TPS:    cfg.FrameRate,
		Logger: lg,
	}); err != nil {
		return err
	}

	if rec == nil {
		return nil
	}
	id, err := cli.SaveSession(cfg, storage.SessionMetadata{
		Source: "touch",
		Width:  p.Size().W,
		Height: p.Size().H,
	}, rec, lg)
	if err != nil {
		return err
	}
	fmt.Printf("session saved: %s\n", id)
	return nil
}

package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/host"
	"github.com/san-kum/flightdeck/internal/log"
	"github.com/san-kum/flightdeck/internal/panel"
	"github.com/san-kum/flightdeck/internal/viz"
)

type Options struct {
	Size      geom.Size
	Theme     viz.Theme
	FrameRate int
	Logger    *log.Logger
}

type App struct {
	Panel   *panel.Panel
	Theme   viz.Theme
	Palette panel.Palette
	ShowHUD bool

	tracker host.Tracker
	prims   []panel.Primitive
	dirty   bool
	lg      *log.Logger
}

// initWindow opens a resizable window at the panel's viewport size.
func initWindow(size geom.Size, fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(size.W), int32(size.H), "flightdeck")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

func NewApp(p *panel.Panel, opts Options) *App {
	a := &App{
		Panel:   p,
		Theme:   opts.Theme,
		Palette: opts.Theme.Palette(),
		dirty:   true,
		lg:      opts.Logger.With(slog.String("host", "raylib")),
	}
	p.SetRedraw(func() { a.dirty = true })
	return a
}

// Run opens the window and drives p until the window is closed.
func Run(p *panel.Panel, opts Options) {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	if opts.Theme.Name == "" {
		opts.Theme = viz.ThemeChiindii
	}
	initWindow(opts.Size, opts.FrameRate)
	defer rl.CloseWindow()

	app := NewApp(p, opts)
	app.lg.Info("window opened",
		slog.Float64("width", opts.Size.W),
		slog.Float64("height", opts.Size.H),
		slog.String("theme", opts.Theme.Name))
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.Panel.Resize(geom.Sz(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())))

	if rl.IsKeyPressed(rl.KeyR) {
		a.Panel.Reset()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.cycleTheme()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}

	down, at := pointer()
	if ev, ok := a.tracker.Poll(down, at); ok {
		a.Panel.HandlePointer(ev)
	}
}

// pointer prefers the first touch and falls back to the left mouse button.
func pointer() (bool, geom.Point) {
	if rl.GetTouchPointCount() > 0 {
		t := rl.GetTouchPosition(0)
		return true, geom.Pt(float64(t.X), float64(t.Y))
	}
	m := rl.GetMousePosition()
	return rl.IsMouseButtonDown(rl.MouseLeftButton), geom.Pt(float64(m.X), float64(m.Y))
}

func (a *App) cycleTheme() {
	a.Theme = viz.NextTheme(a.Theme.Name)
	a.Palette = a.Theme.Palette()
	a.lg.Debug("theme changed", slog.String("theme", a.Theme.Name))
}

func (a *App) Draw() {
	if a.dirty {
		a.prims = a.Panel.Render()
		a.dirty = false
	}

	rl.BeginDrawing()
	rl.ClearBackground(a.Palette.Background)
	host.Paint(surface{}, a.prims, a.Palette)
	if a.ShowHUD {
		a.drawHUD()
	}
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	s := a.Panel.State()
	col := a.Palette.Normal
	h := int32(rl.GetScreenHeight())
	rl.DrawText(s.String(), 80, h-40, 10, col)
	rl.DrawText(fmt.Sprintf("%s  %d fps  %s", a.Theme.Name, rl.GetFPS(), a.Panel.Phase()), 80, h-24, 10, col)
}

// Package touch hosts the panel in an ebiten window. It is linked into its
// own binary so its GLFW build never meets raylib's.
package touch

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/host"
	"github.com/san-kum/flightdeck/internal/log"
	"github.com/san-kum/flightdeck/internal/panel"
	"github.com/san-kum/flightdeck/internal/viz"
)

type Options struct {
	Size   geom.Size
	Theme  viz.Theme
	TPS    int
	Logger *log.Logger
}

// Game implements ebiten.Game around a panel.
type Game struct {
	panel   *panel.Panel
	theme   viz.Theme
	pal     panel.Palette
	tracker host.Tracker
	touches []ebiten.TouchID
	hud     bool
	lg      *log.Logger
}

func NewGame(p *panel.Panel, opts Options) *Game {
	if opts.Theme.Name == "" {
		opts.Theme = viz.ThemeChiindii
	}
	return &Game{
		panel: p,
		theme: opts.Theme,
		pal:   opts.Theme.Palette(),
		lg:    opts.Logger.With(slog.String("host", "ebiten")),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.panel.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.cycleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}

	down, at := g.pointer()
	if ev, ok := g.tracker.Poll(down, at); ok {
		g.panel.HandlePointer(ev)
	}
	return nil
}

// pointer prefers the first active touch and falls back to the left mouse
// button.
func (g *Game) pointer() (bool, geom.Point) {
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		x, y := ebiten.TouchPosition(g.touches[0])
		return true, geom.Pt(float64(x), float64(y))
	}
	x, y := ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), geom.Pt(float64(x), float64(y))
}

func (g *Game) cycleTheme() {
	g.theme = viz.NextTheme(g.theme.Name)
	g.pal = g.theme.Palette()
}

func (g *Game) Draw(screen *ebiten.Image) {
	host.Paint(surface{screen}, g.panel.Render(), g.pal)
	if g.hud {
		s := g.panel.State()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s\n%s  %.0f tps", s, g.theme.Name, ebiten.ActualTPS()), 80, int(g.panel.Size().H)-40)
	}
}

// Layout follows the window size so the panel always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.panel.Resize(geom.Sz(float64(outsideWidth), float64(outsideHeight)))
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(p *panel.Panel, opts Options) error {
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}
	ebiten.SetWindowSize(int(opts.Size.W), int(opts.Size.H))
	ebiten.SetWindowTitle("flightdeck")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(p, opts)
	g.lg.Info("touch window opened",
		slog.Float64("width", opts.Size.W),
		slog.Float64("height", opts.Size.H))
	return ebiten.RunGame(g)
}

type surface struct {
	dst *ebiten.Image
}

func (s surface) FillRect(r geom.Rect, c color.RGBA) {
	vector.DrawFilledRect(s.dst, float32(r.Min.X), float32(r.Min.Y), float32(r.W), float32(r.H), c, false)
}

func (s surface) FillCircle(c geom.Circle, col color.RGBA) {
	vector.DrawFilledCircle(s.dst, float32(c.Center.X), float32(c.Center.Y), float32(c.Radius), col, true)
}

func (s surface) StrokeCircle(c geom.Circle, w float64, col color.RGBA) {
	vector.StrokeCircle(s.dst, float32(c.Center.X), float32(c.Center.Y), float32(c.Radius), float32(w), col, true)
}

func (s surface) Line(a, b geom.Point, w float64, col color.RGBA) {
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(w), col, true)
}

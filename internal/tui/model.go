package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/log"
	"github.com/san-kum/flightdeck/internal/panel"
	"github.com/san-kum/flightdeck/internal/viz"
)

const (
	headerRows = 2
	footerRows = 2
	historyLen = 60

	minScale = 0.5
	maxScale = 8
)

type Options struct {
	Theme  viz.Theme
	Scale  float64 // panel units per braille dot
	Logger *log.Logger
}

// Model hosts a panel in the terminal. The canvas fills the window between
// a status header and a key hint footer; mouse presses and drags over it
// become pointer events.
type Model struct {
	panel  *panel.Panel
	theme  viz.Theme
	styles viz.Styles
	scale  float64
	lg     *log.Logger

	width  int
	height int
	down   bool
	dirty  bool
	frame  string

	canvas     *viz.Canvas
	canvasSize geom.Size

	history []float64
}

func NewModel(p *panel.Panel, opts Options) *Model {
	if opts.Theme.Name == "" {
		opts.Theme = viz.ThemeChiindii
	}
	if opts.Scale <= 0 {
		opts.Scale = 2
	}
	m := &Model{
		panel:   p,
		theme:   opts.Theme,
		styles:  viz.NewStyles(opts.Theme),
		scale:   opts.Scale,
		lg:      opts.Logger.With(slog.String("host", "terminal")),
		width:   80,
		height:  24,
		dirty:   true,
		history: make([]float64, 0, historyLen),
	}
	p.SetRedraw(func() { m.dirty = true })
	m.resize()
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.panel.Reset()
		m.history = m.history[:0]
	case "t":
		m.cycleTheme()
	case "+", "=":
		m.zoom(m.scale / 2)
	case "-", "_":
		m.zoom(m.scale * 2)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pt := m.toPanel(msg.X, msg.Y)

	var ev panel.Event
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.down = true
		ev = panel.Begin(pt)
	case msg.Action == tea.MouseActionMotion && m.down:
		ev = panel.Move(pt)
	case msg.Action == tea.MouseActionRelease && m.down:
		m.down = false
		ev = panel.End(pt)
	default:
		return
	}

	if m.panel.HandlePointer(ev) {
		m.history = append(m.history, float64(m.panel.State().Throttle))
		if len(m.history) > historyLen {
			m.history = m.history[1:]
		}
	}
}

// toPanel maps a terminal cell to panel units at the cell's center.
func (m *Model) toPanel(col, row int) geom.Point {
	return geom.Pt(
		(float64(col)+0.5)*2*m.scale,
		(float64(row-headerRows)+0.5)*4*m.scale,
	)
}

func (m *Model) canvasCells() (cols, rows int) {
	return max(m.width, 0), max(m.height-headerRows-footerRows, 0)
}

func (m *Model) resize() {
	cols, rows := m.canvasCells()
	size := geom.Sz(float64(cols)*2*m.scale, float64(rows)*4*m.scale)
	m.lg.Debug("terminal resized",
		slog.Int("cols", cols),
		slog.Int("rows", rows),
		slog.Float64("scale", m.scale))
	m.panel.Resize(size)
	m.dirty = true
}

func (m *Model) zoom(scale float64) {
	m.scale = max(minScale, min(scale, maxScale))
	m.resize()
}

func (m *Model) cycleTheme() {
	m.theme = viz.NextTheme(m.theme.Name)
	m.styles = viz.NewStyles(m.theme)
	m.dirty = true
}

func (m *Model) render() string {
	if m.dirty {
		size := m.panel.Size()
		if m.canvas == nil || size != m.canvasSize {
			m.canvas = viz.CanvasFor(size.W, size.H, m.scale)
			m.canvasSize = size
		} else {
			m.canvas.Clear()
		}
		viz.Rasterize(m.canvas, m.panel.Render(), m.scale)
		m.frame = m.canvas.Render(m.theme)
		m.dirty = false
	}
	return m.frame
}

func (m *Model) View() string {
	var b strings.Builder
	s := m.panel.State()

	b.WriteString(viz.GradientText("flightdeck", m.theme.Normal, m.theme.Highlight))
	b.WriteString("  " + m.styles.Title.Render(m.theme.Name))
	b.WriteString(m.styles.MetricLabel.Render(fmt.Sprintf("  %.0fx%.0f", m.panel.Size().W, m.panel.Size().H)))
	b.WriteString("\n")

	b.WriteString(m.metric("thr", viz.StepGauge(s.Throttle, panel.MinStep, panel.MaxStep, m.styles)))
	b.WriteString(m.metric("pitch", viz.StepGauge(s.Pitch, panel.MinStep, panel.MaxStep, m.styles)))
	b.WriteString(m.metric("roll", viz.StepGauge(s.Roll, panel.MinStep, panel.MaxStep, m.styles)))
	b.WriteString(m.button("takeoff", s.Pressed[panel.ButtonTakeoff]))
	b.WriteString(m.button("menu", s.Pressed[panel.ButtonMenu]))
	b.WriteString("\n")

	b.WriteString(m.render())
	b.WriteString("\n")

	b.WriteString(m.styles.MetricLabel.Render("thr ") + viz.SparklineChart(m.history, 24, m.styles))
	b.WriteString(m.styles.MetricValue.Render(fmt.Sprintf("  %+.2fg", s.GForce())))
	b.WriteString("\n")
	b.WriteString(m.styles.KeyHint.Render("drag to fly  t theme  ± zoom  r reset  q quit"))

	return b.String()
}

func (m *Model) metric(label, gauge string) string {
	return m.styles.MetricLabel.Render(label+" ") + gauge + "  "
}

func (m *Model) button(label string, pressed bool) string {
	if pressed {
		return m.styles.Active.Render(" "+label+" ") + " "
	}
	return m.styles.MetricLabel.Render("["+label+"]") + " "
}

// Panel returns the hosted panel.
func (m *Model) Panel() *panel.Panel { return m.panel }

// Run starts the terminal host with mouse reporting in the alternate screen.
func Run(p *panel.Panel, opts Options) error {
	m := NewModel(p, opts)
	m.lg.Info("terminal host started", slog.String("theme", m.theme.Name))
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := prog.Run()
	return err
}

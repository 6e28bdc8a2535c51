package panel

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/log"
)

// DefaultLayoutCache holds portrait and landscape layouts plus a spare.
const DefaultLayoutCache = 4

// Panel owns the control state and the layout for the current viewport and
// wires host callbacks to the renderer and the input mapper. It is not safe
// for concurrent use; hosts drive it from their UI loop.
type Panel struct {
	state  State
	mapper InputMapper

	size    geom.Size
	layout  *Layout
	layouts *lru.Cache[geom.Size, *Layout]

	redraw    func()
	observers []func(Event, State)
	lg        *log.Logger
}

type Option func(*Panel)

// WithRedraw sets the trigger fired after every state change or resize.
func WithRedraw(fn func()) Option {
	return func(p *Panel) { p.redraw = fn }
}

func WithLogger(lg *log.Logger) Option {
	return func(p *Panel) { p.lg = lg }
}

// WithLayoutCache sets how many viewport sizes keep their layout around.
func WithLayoutCache(n int) Option {
	return func(p *Panel) {
		if n < 1 {
			n = 1
		}
		p.layouts, _ = lru.New[geom.Size, *Layout](n)
	}
}

func New(size geom.Size, opts ...Option) *Panel {
	p := &Panel{}
	for _, opt := range opts {
		opt(p)
	}
	if p.layouts == nil {
		p.layouts, _ = lru.New[geom.Size, *Layout](DefaultLayoutCache)
	}
	p.Resize(size)
	return p
}

// Resize switches to the layout for size, computing it only on a cache
// miss. Resizing to the current size is a no-op.
func (p *Panel) Resize(size geom.Size) {
	if p.layout != nil && size == p.size {
		return
	}
	p.size = size

	l, ok := p.layouts.Get(size)
	if !ok {
		l = ComputeLayout(size)
		p.layouts.Add(size, l)
		p.lg.Debug("layout computed",
			slog.Float64("width", size.W),
			slog.Float64("height", size.H),
			slog.Bool("empty", l.Empty()))
	}
	p.layout = l
	p.requestRedraw()
}

// HandlePointer feeds one event through the input mapper, notifies
// observers and requests a redraw when the state changed.
func (p *Panel) HandlePointer(ev Event) bool {
	if ev.Phase != PhaseEnd && len(ev.Points) == 0 {
		p.lg.Debug("pointer event without points dropped", slog.String("phase", ev.Phase.String()))
		return false
	}

	changed := p.mapper.Handle(&p.state, p.layout, ev)
	for _, fn := range p.observers {
		fn(ev, p.state)
	}
	if changed {
		p.requestRedraw()
	}
	return changed
}

// Render draws the current state with the cached layout.
func (p *Panel) Render() []Primitive {
	return Render(p.state, p.layout, p.size)
}

func (p *Panel) State() State        { return p.state }
func (p *Panel) Layout() *Layout     { return p.layout }
func (p *Panel) Size() geom.Size     { return p.size }
func (p *Panel) Phase() MapperState  { return p.mapper.State() }
func (p *Panel) CachedLayouts() int  { return p.layouts.Len() }
func (p *Panel) SetRedraw(fn func()) { p.redraw = fn }

// OnChange registers fn to run after every accepted pointer event with the
// resulting state, whether or not it changed.
func (p *Panel) OnChange(fn func(Event, State)) {
	p.observers = append(p.observers, fn)
}

// Reset returns the controls to the initial state without touching the
// layout.
func (p *Panel) Reset() {
	p.state = State{}
	p.mapper = InputMapper{}
	p.requestRedraw()
}

func (p *Panel) requestRedraw() {
	if p.redraw != nil {
		p.redraw()
	}
}

package panel

import "github.com/san-kum/flightdeck/internal/geom"

const (
	cellSize     = 20.0 // height of a throttle step, side of an attitude step
	centerCell   = 40.0 // the zero cell is twice as deep on its axis
	ladderX      = 20.0
	ladderWidth  = 40.0
	horizonInset = 20.0
	buttonRadius = 40.0
	buttonMargin = 20.0
)

// Layout is every region derived from one viewport size. It is shared by the
// renderer and the input mapper and never modified after ComputeLayout.
type Layout struct {
	Size     geom.Size
	Horizon  geom.Circle
	Throttle [Steps]geom.Rect
	Attitude [Steps][Steps]geom.Rect
	Buttons  [NumButtons]geom.Circle
}

// band returns the span owned by step i on an axis centered at mid, where
// positive steps move toward smaller coordinates. Step 0 straddles mid.
func band(mid float64, i int) (lo, size float64) {
	switch {
	case i > 0:
		return mid - cellSize*float64(i) - cellSize, cellSize
	case i < 0:
		return mid - cellSize*float64(i), cellSize
	default:
		return mid - centerCell/2, centerCell
	}
}

// ComputeLayout derives the regions for a viewport. A degenerate size yields
// an empty layout whose regions contain no point.
func ComputeLayout(size geom.Size) *Layout {
	l := &Layout{Size: size}
	if size.Degenerate() {
		return l
	}

	c := size.Center()

	radius := size.H/2 - horizonInset
	if radius < 0 {
		radius = 0
	}
	l.Horizon = geom.Circle{Center: c, Radius: radius}

	for i := MinStep; i <= MaxStep; i++ {
		y, h := band(c.Y, i)
		l.Throttle[i-MinStep] = geom.R(ladderX, y, ladderWidth, h)
	}

	for x := MinStep; x <= MaxStep; x++ {
		bx, w := band(c.X, x)
		for y := MinStep; y <= MaxStep; y++ {
			by, h := band(c.Y, y)
			l.Attitude[x-MinStep][y-MinStep] = geom.R(bx, by, w, h)
		}
	}

	off := buttonMargin + buttonRadius
	l.Buttons[ButtonTakeoff] = geom.C(size.W-off, off, buttonRadius)
	l.Buttons[ButtonMenu] = geom.C(size.W-off, size.H-off, buttonRadius)

	return l
}

func (l *Layout) Empty() bool { return l == nil || l.Size.Degenerate() }

func (l *Layout) ThrottleCell(i int) (geom.Rect, bool) {
	if l == nil || !inRange(i) {
		return geom.Rect{}, false
	}
	return l.Throttle[i-MinStep], true
}

func (l *Layout) AttitudeCell(x, y int) (geom.Rect, bool) {
	if l == nil || !inRange(x) || !inRange(y) {
		return geom.Rect{}, false
	}
	return l.Attitude[x-MinStep][y-MinStep], true
}

func (l *Layout) Button(i int) (geom.Circle, bool) {
	if l == nil || i < 0 || i >= NumButtons {
		return geom.Circle{}, false
	}
	return l.Buttons[i], true
}

// HitThrottle returns the throttle step under p.
func (l *Layout) HitThrottle(p geom.Point) (int, bool) {
	if l == nil {
		return 0, false
	}
	for i := MinStep; i <= MaxStep; i++ {
		if l.Throttle[i-MinStep].Contains(p) {
			return i, true
		}
	}
	return 0, false
}

// HitAttitude returns the (roll, pitch) cell under p, scanning x outermost.
func (l *Layout) HitAttitude(p geom.Point) (x, y int, ok bool) {
	if l == nil {
		return 0, 0, false
	}
	for x := MinStep; x <= MaxStep; x++ {
		for y := MinStep; y <= MaxStep; y++ {
			if l.Attitude[x-MinStep][y-MinStep].Contains(p) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

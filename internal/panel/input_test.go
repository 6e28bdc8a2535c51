package panel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/panel"
)

var _ = Describe("InputMapper", func() {
	var (
		m panel.InputMapper
		s panel.State
		l *panel.Layout
	)

	BeforeEach(func() {
		m = panel.InputMapper{}
		s = panel.State{}
		l = panel.ComputeLayout(geom.Sz(300, 300))
	})

	Describe("move", func() {
		It("selects every throttle step from its cell center", func() {
			// Wide enough that the ladder lies outside the attitude grid.
			wide := panel.ComputeLayout(geom.Sz(667, 375))
			for i := panel.MinStep; i <= panel.MaxStep; i++ {
				s = panel.State{}
				c, _ := wide.ThrottleCell(i)
				m.Handle(&s, wide, panel.Move(c.Center()))
				Expect(s.Throttle).To(Equal(i))
				Expect(s.Pitch).To(BeZero())
				Expect(s.Roll).To(BeZero())
				Expect(s.Pressed).To(Equal([2]bool{}))
			}
		})

		It("sets roll and pitch together from every attitude cell", func() {
			for x := panel.MinStep; x <= panel.MaxStep; x++ {
				for y := panel.MinStep; y <= panel.MaxStep; y++ {
					c, _ := l.AttitudeCell(x, y)
					m.Handle(&s, l, panel.Move(c.Center()))
					Expect(s.Roll).To(Equal(x))
					Expect(s.Pitch).To(Equal(y))
				}
			}
		})

		It("centers pitch and roll at the viewport center and keeps the throttle", func() {
			s = panel.State{Throttle: 4, Pitch: 3, Roll: -2}
			changed := m.Handle(&s, l, panel.Move(geom.Pt(150, 150)))
			Expect(changed).To(BeTrue())
			Expect(s.Throttle).To(Equal(4))
			Expect(s.Pitch).To(BeZero())
			Expect(s.Roll).To(BeZero())
		})

		It("maps a point just inside the top right corner cell", func() {
			c, _ := l.AttitudeCell(-6, 6)
			m.Handle(&s, l, panel.Move(c.Min.Add(geom.Pt(0.5, 0.5))))
			Expect(s.Roll).To(Equal(-6))
			Expect(s.Pitch).To(Equal(6))
		})

		It("leaves the state alone outside every region", func() {
			s = panel.State{Throttle: 2, Pitch: -1, Roll: 1}
			Expect(m.Handle(&s, l, panel.Move(geom.Pt(299, 299)))).To(BeFalse())
			Expect(s).To(Equal(panel.State{Throttle: 2, Pitch: -1, Roll: 1}))
		})

		It("does not touch the buttons", func() {
			s.Pressed = [2]bool{true, false}
			m.Handle(&s, l, panel.Move(geom.Pt(240, 240)))
			Expect(s.Pressed).To(Equal([2]bool{true, false}))
		})

		It("is applied while idle", func() {
			Expect(m.State()).To(Equal(panel.Idle))
			c, _ := l.ThrottleCell(3)
			Expect(m.Handle(&s, l, panel.Move(c.Center()))).To(BeTrue())
			Expect(s.Throttle).To(Equal(3))
			Expect(s.Pressed).To(Equal([2]bool{}))
			Expect(m.State()).To(Equal(panel.Idle))
		})

		It("reads only the first contact", func() {
			first, _ := l.AttitudeCell(2, -3)
			second, _ := l.AttitudeCell(-4, 4)
			m.Handle(&s, l, panel.Move(first.Center(), second.Center()))
			Expect(s.Roll).To(Equal(2))
			Expect(s.Pitch).To(Equal(-3))
		})
	})

	Describe("begin", func() {
		It("presses the button under the pointer", func() {
			m.Handle(&s, l, panel.Begin(geom.Pt(240, 60)))
			Expect(s.Pressed).To(Equal([2]bool{true, false}))
			Expect(m.State()).To(Equal(panel.Interacting))

			m.Handle(&s, l, panel.Begin(geom.Pt(240, 240)))
			Expect(s.Pressed).To(Equal([2]bool{false, true}))
		})

		It("hit-tests the round button, not its bounding square", func() {
			for _, corner := range []geom.Point{
				geom.Pt(201, 21), geom.Pt(279, 21), geom.Pt(201, 99), geom.Pt(279, 99),
				geom.Pt(201, 201), geom.Pt(279, 279),
			} {
				m.Handle(&s, l, panel.Begin(corner))
				Expect(s.Pressed).To(Equal([2]bool{false, false}), "corner %v", corner)
			}

			m.Handle(&s, l, panel.Begin(geom.Pt(240, 20)))
			Expect(s.Pressed[0]).To(BeFalse(), "the rim itself is outside")
			m.Handle(&s, l, panel.Begin(geom.Pt(240, 21)))
			Expect(s.Pressed[0]).To(BeTrue())
		})

		It("releases buttons not under the pointer", func() {
			s.Pressed = [2]bool{true, true}
			m.Handle(&s, l, panel.Begin(geom.Pt(150, 150)))
			Expect(s.Pressed).To(Equal([2]bool{false, false}))
		})

		It("hit-tests the throttle but not the attitude grid", func() {
			c, _ := l.ThrottleCell(-3)
			m.Handle(&s, l, panel.Begin(c.Center()))
			Expect(s.Throttle).To(Equal(-3))
			Expect(s.Roll).To(BeZero())
			Expect(s.Pitch).To(BeZero())
		})

		It("selects throttle zero from either half of its cell", func() {
			s.Throttle = 5
			m.Handle(&s, l, panel.Begin(geom.Pt(40, 135)))
			Expect(s.Throttle).To(BeZero())

			s.Throttle = 5
			m.Handle(&s, l, panel.Begin(geom.Pt(40, 165)))
			Expect(s.Throttle).To(BeZero())
		})
	})

	Describe("end", func() {
		It("clears both buttons wherever the pointer lifts", func() {
			m.Handle(&s, l, panel.Begin(geom.Pt(240, 60)))
			Expect(s.Pressed[0]).To(BeTrue())

			m.Handle(&s, l, panel.End(geom.Pt(10, 10)))
			Expect(s.Pressed).To(Equal([2]bool{false, false}))
			Expect(m.State()).To(Equal(panel.Idle))
		})

		It("is idempotent without a preceding begin", func() {
			Expect(m.Handle(&s, l, panel.End())).To(BeFalse())
			Expect(s.Pressed).To(Equal([2]bool{false, false}))

			s.Pressed = [2]bool{true, true}
			Expect(m.Handle(&s, l, panel.End())).To(BeTrue())
			Expect(m.Handle(&s, l, panel.End())).To(BeFalse())
			Expect(s.Pressed).To(Equal([2]bool{false, false}))
		})

		It("keeps the axis values", func() {
			s = panel.State{Throttle: -2, Pitch: 4, Roll: 1, Pressed: [2]bool{false, true}}
			m.Handle(&s, l, panel.End())
			Expect(s).To(Equal(panel.State{Throttle: -2, Pitch: 4, Roll: 1}))
		})
	})

	Describe("malformed events", func() {
		It("drops begin and move without points", func() {
			s = panel.State{Throttle: 1}
			Expect(m.Handle(&s, l, panel.Begin())).To(BeFalse())
			Expect(m.Handle(&s, l, panel.Move())).To(BeFalse())
			Expect(s).To(Equal(panel.State{Throttle: 1}))
			Expect(m.State()).To(Equal(panel.Idle))
		})

		It("ignores unknown phases", func() {
			Expect(m.Handle(&s, l, panel.Event{Phase: panel.Phase(9), Points: []geom.Point{{X: 150, Y: 150}}})).To(BeFalse())
		})

		It("finds nothing on a degenerate layout", func() {
			empty := panel.ComputeLayout(geom.Sz(0, 0))
			Expect(m.Handle(&s, empty, panel.Begin(geom.Pt(0, 0)))).To(BeFalse())
			Expect(m.Handle(&s, empty, panel.Move(geom.Pt(0, 0)))).To(BeFalse())
		})
	})

	It("never produces an out of range value", func() {
		for px := -50.0; px <= 350; px += 7 {
			for py := -50.0; py <= 350; py += 7 {
				m.Handle(&s, l, panel.Begin(geom.Pt(px, py)))
				m.Handle(&s, l, panel.Move(geom.Pt(px, py)))
				Expect(s.Valid()).To(BeTrue())
			}
		}
	})
})

var _ = Describe("State", func() {
	It("converts steps to physical units", func() {
		s := panel.State{Throttle: -6, Pitch: 6, Roll: -3}
		Expect(s.GForce()).To(Equal(-1.5))
		Expect(s.PitchDegrees()).To(Equal(30.0))
		Expect(s.RollDegrees()).To(Equal(-15.0))
		Expect(s.PitchRadians()).To(BeNumerically("~", 0.5236, 1e-4))
	})

	It("reports range violations", func() {
		Expect(panel.State{}.Valid()).To(BeTrue())
		Expect(panel.State{Throttle: 7}.Valid()).To(BeFalse())
		Expect(panel.State{Roll: -7}.Valid()).To(BeFalse())
	})

	It("prints a readable summary", func() {
		Expect(panel.State{Throttle: 2, Pressed: [2]bool{true, false}}.String()).
			To(ContainSubstring("throttle=+2 (+0.50g)"))
	})
})

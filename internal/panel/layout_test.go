package panel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/panel"
)

var _ = Describe("ComputeLayout", func() {
	var l *panel.Layout

	BeforeEach(func() {
		l = panel.ComputeLayout(geom.Sz(300, 300))
	})

	It("sizes the horizon from the viewport height", func() {
		Expect(l.Horizon.Center).To(Equal(geom.Pt(150, 150)))
		Expect(l.Horizon.Radius).To(Equal(130.0))
	})

	It("is a pure function of the size", func() {
		Expect(panel.ComputeLayout(geom.Sz(300, 300))).To(Equal(l))
		Expect(panel.ComputeLayout(geom.Sz(667, 375))).To(Equal(panel.ComputeLayout(geom.Sz(667, 375))))
	})

	It("stacks the throttle ladder around the vertical center", func() {
		zero, ok := l.ThrottleCell(0)
		Expect(ok).To(BeTrue())
		Expect(zero).To(Equal(geom.R(20, 130, 40, 40)))

		up, _ := l.ThrottleCell(1)
		Expect(up).To(Equal(geom.R(20, 110, 40, 20)))

		down, _ := l.ThrottleCell(-1)
		Expect(down).To(Equal(geom.R(20, 170, 40, 20)))

		top, _ := l.ThrottleCell(6)
		Expect(top).To(Equal(geom.R(20, 10, 40, 20)))

		bottom, _ := l.ThrottleCell(-6)
		Expect(bottom).To(Equal(geom.R(20, 270, 40, 20)))
	})

	It("widens only the zero column and row of the attitude grid", func() {
		center, _ := l.AttitudeCell(0, 0)
		Expect(center).To(Equal(geom.R(130, 130, 40, 40)))

		col, _ := l.AttitudeCell(0, 3)
		Expect(col.W).To(Equal(40.0))
		Expect(col.H).To(Equal(20.0))

		row, _ := l.AttitudeCell(-2, 0)
		Expect(row.W).To(Equal(20.0))
		Expect(row.H).To(Equal(40.0))

		corner, _ := l.AttitudeCell(-6, 6)
		Expect(corner).To(Equal(geom.R(270, 10, 20, 20)))
	})

	It("anchors the buttons to the right edge", func() {
		Expect(l.Buttons[panel.ButtonTakeoff]).To(Equal(geom.C(240, 60, 40)))
		Expect(l.Buttons[panel.ButtonMenu]).To(Equal(geom.C(240, 240, 40)))
		Expect(l.Buttons[0].Bounds()).To(Equal(geom.R(200, 20, 80, 80)))
	})

	It("rejects out of range indices", func() {
		_, ok := l.ThrottleCell(7)
		Expect(ok).To(BeFalse())
		_, ok = l.AttitudeCell(0, -7)
		Expect(ok).To(BeFalse())
		_, ok = l.Button(2)
		Expect(ok).To(BeFalse())
	})

	It("never lets two throttle cells or two attitude cells overlap", func() {
		for i := panel.MinStep; i <= panel.MaxStep; i++ {
			for j := i + 1; j <= panel.MaxStep; j++ {
				a, _ := l.ThrottleCell(i)
				b, _ := l.ThrottleCell(j)
				Expect(a.Overlaps(b)).To(BeFalse(), "throttle %d and %d", i, j)
			}
		}

		cells := make([]geom.Rect, 0, panel.Steps*panel.Steps)
		for x := panel.MinStep; x <= panel.MaxStep; x++ {
			for y := panel.MinStep; y <= panel.MaxStep; y++ {
				c, _ := l.AttitudeCell(x, y)
				cells = append(cells, c)
			}
		}
		for i := range cells {
			for j := i + 1; j < len(cells); j++ {
				Expect(cells[i].Overlaps(cells[j])).To(BeFalse())
			}
		}
	})

	It("matches at most one index per axis for any point", func() {
		for px := 0.0; px <= 300; px += 2.5 {
			for py := 0.0; py <= 300; py += 2.5 {
				p := geom.Pt(px, py)

				throttle := 0
				for i := panel.MinStep; i <= panel.MaxStep; i++ {
					if c, _ := l.ThrottleCell(i); c.Contains(p) {
						throttle++
					}
				}
				Expect(throttle).To(BeNumerically("<=", 1), "throttle at %v", p)

				attitude := 0
				for x := panel.MinStep; x <= panel.MaxStep; x++ {
					for y := panel.MinStep; y <= panel.MaxStep; y++ {
						if c, _ := l.AttitudeCell(x, y); c.Contains(p) {
							attitude++
						}
					}
				}
				Expect(attitude).To(BeNumerically("<=", 1), "attitude at %v", p)
			}
		}
	})

	Context("with a degenerate viewport", func() {
		DescribeTable("produces an empty layout",
			func(size geom.Size) {
				l := panel.ComputeLayout(size)
				Expect(l.Empty()).To(BeTrue())
				Expect(l.Horizon.Radius).To(BeZero())

				_, ok := l.HitThrottle(geom.Pt(0, 0))
				Expect(ok).To(BeFalse())
				_, _, ok = l.HitAttitude(geom.Pt(0, 0))
				Expect(ok).To(BeFalse())
				Expect(l.Buttons[0].Contains(geom.Pt(0, 0))).To(BeFalse())
			},
			Entry("zero width", geom.Sz(0, 300)),
			Entry("zero height", geom.Sz(300, 0)),
			Entry("negative", geom.Sz(-10, -10)),
		)
	})

	It("clamps the horizon on very short viewports", func() {
		Expect(panel.ComputeLayout(geom.Sz(400, 30)).Horizon.Radius).To(BeZero())
	})
})

package panel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/panel"
)

func countRole[T panel.Primitive](prims []panel.Primitive, role panel.Role) int {
	n := 0
	for _, p := range prims {
		if _, ok := p.(T); ok && p.Role() == role {
			n++
		}
	}
	return n
}

var _ = Describe("Render", func() {
	size := geom.Sz(300, 300)
	l := panel.ComputeLayout(size)

	It("starts with the background and the horizon", func() {
		prims := panel.Render(panel.State{}, l, size)
		Expect(prims).To(HaveLen(34))
		Expect(prims[0]).To(Equal(panel.FillRect{Rect: geom.R(0, 0, 300, 300), R: panel.RoleBackground}))
		Expect(prims[1]).To(Equal(panel.StrokeCircle{Circle: geom.C(150, 150, 130), R: panel.RoleNormal}))
	})

	It("draws a static reticle", func() {
		prims := panel.Render(panel.State{}, l, size)
		Expect(prims[2]).To(Equal(panel.StrokeCircle{Circle: geom.C(150, 150, 10), R: panel.RoleNormal}))
		Expect(prims[3]).To(Equal(panel.Line{From: geom.Pt(30, 150), To: geom.Pt(130, 150), R: panel.RoleNormal}))
		Expect(prims[4]).To(Equal(panel.Line{From: geom.Pt(170, 150), To: geom.Pt(270, 150), R: panel.RoleNormal}))
	})

	It("ignores pitch and roll", func() {
		Expect(panel.Render(panel.State{Pitch: 6, Roll: -6}, l, size)).
			To(Equal(panel.Render(panel.State{}, l, size)))
	})

	It("draws eight dotted ladder lines", func() {
		prims := panel.Render(panel.State{}, l, size)
		var dotted []panel.Line
		for _, p := range prims {
			if line, ok := p.(panel.Line); ok && line.Dot > 0 {
				dotted = append(dotted, line)
			}
		}
		Expect(dotted).To(HaveLen(8))
		Expect(dotted[0].From).To(Equal(geom.Pt(130, 130)))
		Expect(dotted[0].To).To(Equal(geom.Pt(171, 130)))
		Expect(dotted[0].Dots()).To(HaveLen(5))
		Expect(dotted[7].From).To(Equal(geom.Pt(70, 230)))
	})

	DescribeTable("highlights the selected throttle step",
		func(throttle, highlighted int) {
			prims := panel.Render(panel.State{Throttle: throttle}, l, size)
			Expect(countRole[panel.Polyline](prims, panel.RoleHighlight)).To(Equal(highlighted))
			Expect(countRole[panel.Polyline](prims, panel.RoleNormal)).To(Equal(14 - highlighted + 2))
		},
		Entry("top", 6, 1),
		Entry("diamond at zero", 0, 2),
		Entry("bottom", -6, 1),
	)

	It("points chevrons away from the center", func() {
		prims := panel.Render(panel.State{Throttle: 6}, l, size)
		var top panel.Polyline
		for _, p := range prims {
			if pl, ok := p.(panel.Polyline); ok && pl.R == panel.RoleHighlight {
				top = pl
			}
		}
		Expect(top.Points).To(Equal([]geom.Point{geom.Pt(20, 30), geom.Pt(40, 10), geom.Pt(60, 30)}))
	})

	It("fills pressed buttons and outlines released ones", func() {
		prims := panel.Render(panel.State{Pressed: [2]bool{true, false}}, l, size)
		Expect(prims).To(ContainElement(panel.FillCircle{Circle: l.Buttons[0], R: panel.RoleHighlight}))
		Expect(prims).To(ContainElement(panel.StrokeCircle{Circle: l.Buttons[1], R: panel.RoleNormal}))
		Expect(prims).NotTo(ContainElement(panel.StrokeCircle{Circle: l.Buttons[0], R: panel.RoleNormal}))
	})

	It("ends with the button glyphs", func() {
		prims := panel.Render(panel.State{}, l, size)
		last := prims[len(prims)-3:]
		Expect(last).To(Equal([]panel.Primitive{
			panel.Line{From: geom.Pt(260, 260), To: geom.Pt(220, 260), R: panel.RoleNormal},
			panel.Line{From: geom.Pt(260, 240), To: geom.Pt(220, 240), R: panel.RoleNormal},
			panel.Line{From: geom.Pt(260, 220), To: geom.Pt(220, 220), R: panel.RoleNormal},
		}))
	})

	It("draws only the background for a degenerate viewport", func() {
		empty := geom.Sz(0, 200)
		prims := panel.Render(panel.State{Pressed: [2]bool{true, true}}, panel.ComputeLayout(empty), empty)
		Expect(prims).To(HaveLen(1))
		Expect(prims[0].Role()).To(Equal(panel.RoleBackground))
	})
})

var _ = Describe("Palette", func() {
	It("resolves every role", func() {
		p := panel.DefaultPalette
		Expect(p.Color(panel.RoleBackground)).To(Equal(p.Background))
		Expect(p.Color(panel.RoleNormal)).To(Equal(p.Normal))
		Expect(p.Color(panel.RoleHighlight)).To(Equal(p.Highlight))
		Expect(panel.RoleHighlight.String()).To(Equal("highlight"))
	})
})

package panel_test

import (
	"bytes"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/flightdeck/internal/geom"
	"github.com/san-kum/flightdeck/internal/log"
	"github.com/san-kum/flightdeck/internal/panel"
)

var _ = Describe("Panel", func() {
	var (
		p       *panel.Panel
		redraws int
		seen    []panel.State
		logBuf  *bytes.Buffer
	)

	BeforeEach(func() {
		redraws = 0
		seen = nil
		logBuf = &bytes.Buffer{}
		p = panel.New(geom.Sz(300, 300),
			panel.WithRedraw(func() { redraws++ }),
			panel.WithLogger(log.NewWriter(logBuf, slog.LevelDebug)),
			panel.WithLayoutCache(2))
		p.OnChange(func(_ panel.Event, s panel.State) { seen = append(seen, s) })
	})

	It("starts centered with a layout ready before any draw", func() {
		Expect(p.State()).To(Equal(panel.State{}))
		Expect(p.Layout()).NotTo(BeNil())
		Expect(p.Layout().Horizon.Radius).To(Equal(130.0))
		Expect(redraws).To(Equal(1))

		p.HandlePointer(panel.Begin(geom.Pt(240, 60)))
		Expect(p.State().Pressed[0]).To(BeTrue())
	})

	It("reuses the layout for an unchanged size", func() {
		l := p.Layout()
		p.Resize(geom.Sz(300, 300))
		Expect(p.Layout()).To(BeIdenticalTo(l))
		Expect(redraws).To(Equal(1))
	})

	It("caches layouts across rotations", func() {
		landscape := p.Layout()
		p.Resize(geom.Sz(300, 500))
		Expect(p.Layout().Size).To(Equal(geom.Sz(300, 500)))
		p.Resize(geom.Sz(300, 300))
		Expect(p.Layout()).To(BeIdenticalTo(landscape))
		Expect(p.CachedLayouts()).To(Equal(2))
		Expect(redraws).To(Equal(3))
	})

	It("requests a redraw only when the state changes", func() {
		Expect(p.HandlePointer(panel.Move(geom.Pt(299, 299)))).To(BeFalse())
		Expect(redraws).To(Equal(1))

		Expect(p.HandlePointer(panel.Begin(geom.Pt(240, 60)))).To(BeTrue())
		Expect(redraws).To(Equal(2))
		Expect(p.Phase()).To(Equal(panel.Interacting))
	})

	It("notifies observers after every accepted event", func() {
		p.HandlePointer(panel.Begin(geom.Pt(240, 60)))
		p.HandlePointer(panel.Move(geom.Pt(150, 150)))
		p.HandlePointer(panel.End())

		Expect(seen).To(HaveLen(3))
		Expect(seen[0].Pressed).To(Equal([2]bool{true, false}))
		Expect(seen[2].Pressed).To(Equal([2]bool{false, false}))
	})

	It("drops empty events before the mapper and logs them", func() {
		Expect(p.HandlePointer(panel.Move())).To(BeFalse())
		Expect(seen).To(BeEmpty())
		Expect(logBuf.String()).To(ContainSubstring("pointer event without points dropped"))
	})

	It("renders from the cached layout", func() {
		p.HandlePointer(panel.Begin(geom.Pt(240, 240)))
		prims := p.Render()
		Expect(prims).To(ContainElement(panel.FillCircle{Circle: p.Layout().Buttons[1], R: panel.RoleHighlight}))
	})

	It("resets the controls", func() {
		c, _ := p.Layout().AttitudeCell(3, -2)
		p.HandlePointer(panel.Begin(geom.Pt(240, 60)))
		p.HandlePointer(panel.Move(c.Center()))
		p.Reset()
		Expect(p.State()).To(Equal(panel.State{}))
		Expect(p.Phase()).To(Equal(panel.Idle))
	})

	It("survives a degenerate resize", func() {
		p.Resize(geom.Sz(0, 0))
		Expect(p.Layout().Empty()).To(BeTrue())
		Expect(p.HandlePointer(panel.Begin(geom.Pt(0, 0)))).To(BeFalse())
		Expect(p.Render()).To(HaveLen(1))
	})
})

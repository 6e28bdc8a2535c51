// Package panel implements the flight control surface: a static artificial
// horizon, a 13 step throttle ladder, a 13x13 attitude grid and two push
// buttons.
//
// The package is headless. Hosts (desktop window, touch window, terminal,
// exporters) feed it viewport sizes and pointer events and execute the
// primitives it returns:
//
//   - [State]: throttle, pitch, roll in [-6, 6] and two button flags
//   - [ComputeLayout]: every hit and draw region for a viewport size
//   - [Render]: state + layout to an ordered list of [Primitive]
//   - [InputMapper]: begin/move/end events to state updates
//   - [Panel]: owns the state and the cached layout for one surface
//
// # Example
//
//	p := panel.New(geom.Sz(667, 375), panel.WithRedraw(requestFrame))
//	p.HandlePointer(panel.Move(geom.Pt(333, 187)))
//	for _, prim := range p.Render() {
//		draw(prim)
//	}
//
// # Thread Safety
//
// Nothing here is safe for concurrent use. Every host drives its panel from
// its own UI loop.
package panel

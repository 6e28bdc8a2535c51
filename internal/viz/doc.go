// Package viz draws the flight panel in a terminal.
//
// The panel's primitives are rasterized onto a braille [Canvas], two by four
// dots per character cell, and colored with a [Theme]:
//
//   - [Rasterize]: paints primitives at a chosen panel-units-per-dot scale
//   - [Canvas.Render]: emits the canvas with lipgloss colors, highlighted
//     cells in the theme's highlight color
//   - [Theme.Palette]: the same colors for the raster and window hosts
//
// # Themes
//
//	chiindii - black, blue strokes, cream highlight
//	retro    - green phosphor
//	minimal  - grey and white
//	ocean    - deep blue with gold highlight
package viz

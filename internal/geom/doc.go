// Package geom provides the small 2D vocabulary shared by layout, rendering
// and hit-testing: [Point], [Size], [Rect] and [Circle].
//
// Coordinates are host drawing units with the origin at the top left and Y
// growing downward. Rectangle containment is half-open on the max edges so
// adjacent cells partition the plane without double matches.
package geom

package host

import (
	gui "github.com/go-theft-auto/modkit"
)

// FlatWorld is a top-down WorldContext: world x and z map to screen x and y
// around Center, y is ignored. The bundled backends have no 3D camera and use it
// so world hooks still have somewhere to draw.
type FlatWorld struct {
	P      gui.Painter
	Center gui.Vec2
	// Scale is screen pixels per world unit.
	Scale float32
	// Bounds limits what is visible; the zero rectangle means unbounded.
	Bounds gui.Rect
}

// Painter implements capability.WorldContext.
func (w FlatWorld) Painter() gui.Painter { return w.P }

// Project implements capability.WorldContext.
func (w FlatWorld) Project(x, y, z float64) (gui.Vec2, bool) {
	s := gui.Vec2{
		X: w.Center.X + float32(x)*w.Scale,
		Y: w.Center.Y + float32(z)*w.Scale,
	}
	if w.Bounds.W > 0 && w.Bounds.H > 0 && !w.Bounds.Contains(s) {
		return s, false
	}
	return s, true
}

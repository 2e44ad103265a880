package canvas

import "math"

// minZoomFactor bounds a single wheel step so the scale can never reach zero.
const minZoomFactor = 0.1

// Anchor selects how a zoom step keeps the point under the cursor in place.
type Anchor int

const (
	// AnchorExact solves for the new offset so the world point under the
	// cursor maps back to the same screen position.
	AnchorExact Anchor = iota
	// AnchorIncremental is the first-order update based on the pre-zoom
	// visible extent. It drifts slightly for large steps.
	AnchorIncremental
)

// Viewport maps between the unbounded world plane and surface pixels.
type Viewport struct {
	OffsetX, OffsetY float64
	// Scale is the number of screen pixels per world unit. Always > 0.
	Scale float64
	// Width and Height are the surface size in pixels.
	Width, Height int
}

// NewViewport returns an unpanned, unzoomed viewport of the given pixel size.
func NewViewport(width, height int) Viewport {
	return Viewport{Scale: 1, Width: width, Height: height}
}

// ToScreen converts a world point to screen pixels.
func (v Viewport) ToScreen(x, y float64) (float64, float64) {
	return (x + v.OffsetX) * v.Scale, (y + v.OffsetY) * v.Scale
}

// ToWorld converts a screen position to world coordinates. It is the exact
// inverse of ToScreen.
func (v Viewport) ToWorld(sx, sy float64) (float64, float64) {
	return sx/v.Scale - v.OffsetX, sy/v.Scale - v.OffsetY
}

// VisibleWorldWidth is the world extent across the surface, Width/Scale.
func (v Viewport) VisibleWorldWidth() float64 { return float64(v.Width) / v.Scale }

// VisibleWorldHeight is Height/Scale.
func (v Viewport) VisibleWorldHeight() float64 { return float64(v.Height) / v.Scale }

// VisibleWorldBounds returns the world rectangle currently on screen.
func (v Viewport) VisibleWorldBounds() Rect {
	x, y := v.ToWorld(0, 0)
	return Rect{X: x, Y: y, Width: v.VisibleWorldWidth(), Height: v.VisibleWorldHeight()}
}

// ZoomPercent is the scale as a rounded percentage, as shown in the toolbar.
func (v Viewport) ZoomPercent() int {
	return int(math.Round(v.Scale * 100))
}

// Pan moves the view by a screen-space delta. A delta is translation
// invariant, so it is divided by the scale rather than passed through ToWorld.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx / v.Scale
	v.OffsetY += dy / v.Scale
}

// Resize changes the pixel size without touching offset or scale.
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}

// Zoom applies one wheel step of vertical delta deltaY at cursor (px, py).
// Negative deltas zoom in; a delta of -sensitivity doubles the scale. A
// single step never shrinks the scale below minZoomFactor of its value.
// It reports whether the viewport changed.
func (v *Viewport) Zoom(deltaY, px, py, sensitivity float64, anchor Anchor) bool {
	if sensitivity <= 0 || deltaY == 0 {
		return false
	}
	amount := -deltaY / sensitivity
	if 1+amount < minZoomFactor {
		amount = minZoomFactor - 1
	}
	scale := v.Scale * (1 + amount)
	if !(scale > 0) || math.IsInf(scale, 0) {
		return false
	}

	switch anchor {
	case AnchorIncremental:
		if v.Width > 0 && v.Height > 0 {
			distX := px / float64(v.Width)
			distY := py / float64(v.Height)
			v.OffsetX -= v.VisibleWorldWidth() * amount * distX
			v.OffsetY -= v.VisibleWorldHeight() * amount * distY
		}
	default:
		wx, wy := v.ToWorld(px, py)
		v.OffsetX = px/scale - wx
		v.OffsetY = py/scale - wy
	}
	v.Scale = scale
	return true
}

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside r. Edges count as inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

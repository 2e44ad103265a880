package canvas

import (
	"image/color"
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approxEqual(got, want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

type strokeCall struct {
	x0, y0, x1, y1 float64
	c              color.Color
	width          float64
}

// recordingSurface keeps the calls made by the renderer since the last Resize.
type recordingSurface struct {
	width, height int
	resizes       int
	fills         []color.Color
	strokes       []strokeCall
}

func (s *recordingSurface) Resize(w, h int) {
	s.width, s.height = w, h
	s.resizes++
	s.fills = nil
	s.strokes = nil
}

func (s *recordingSurface) FillBackground(c color.Color) {
	s.fills = append(s.fills, c)
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1 float64, c color.Color, width float64) {
	s.strokes = append(s.strokes, strokeCall{x0, y0, x1, y1, c, width})
}

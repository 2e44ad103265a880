package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// surface is an offscreen ebiten image the machine paints on. Draw blits it
// to the window every frame.
type surface struct {
	img *ebiten.Image
}

func (s *surface) Resize(width, height int) {
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(max(1, width), max(1, height))
}

func (s *surface) FillBackground(c color.Color) {
	s.img.Fill(c)
}

func (s *surface) StrokeLine(x0, y0, x1, y1 float64, c color.Color, width float64) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

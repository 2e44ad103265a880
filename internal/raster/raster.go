// Package raster is an offscreen image surface backed by gg. It is used for
// PNG snapshots of the canvas.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
)

// Surface draws into an in-memory RGBA image.
type Surface struct {
	dc *gg.Context
}

func New(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(max(width, 1), max(height, 1))}
}

// Resize replaces the backing image. Stroke attributes are reset with it.
func (s *Surface) Resize(width, height int) {
	s.dc = gg.NewContext(max(width, 1), max(height, 1))
}

func (s *Surface) FillBackground(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, c color.Color, width float64) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.SetLineCapRound()
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.Stroke()
}

func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) Bounds() image.Rectangle { return s.dc.Image().Bounds() }

// EncodePNG writes the current image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SaveSnapshot writes the image to dir as <timestamp>_<label>.png and returns
// the path.
func (s *Surface) SaveSnapshot(dir, label string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", now.Format("20060102_150405"), label))
	if err := s.dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return path, nil
}

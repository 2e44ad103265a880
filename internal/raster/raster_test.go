package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"testing"
	"time"

	"infcanvas/internal/canvas"
)

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestEmptyStoreIsBackgroundOnly(t *testing.T) {
	s := New(1, 1)
	canvas.New(s, 40, 30)
	b := s.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("bounds = %v, want 40x30", b)
	}
	img := s.Image()
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			if got := rgba(img.At(x, y)); got != (color.RGBA{0, 0, 0, 255}) {
				t.Fatalf("pixel (%d,%d) = %v, want black", x, y, got)
			}
		}
	}
}

func TestStrokeLandsOnScreenPosition(t *testing.T) {
	s := New(1, 1)
	m := canvas.New(s, 100, 100)
	m.PointerDown(canvas.ButtonSecondary, 0, 0)
	m.PointerMove(20, 0)
	m.PointerUp()
	// World x=10..30 at y=50 lands at screen x=30..50 after the pan.
	m.Import([]canvas.Segment{{X0: 10, Y0: 50, X1: 30, Y1: 50}})

	img := s.Image()
	if got := rgba(img.At(40, 50)); got.R < 200 {
		t.Errorf("pixel on the stroke = %v, want white", got)
	}
	if got := rgba(img.At(15, 50)); got.R != 0 {
		t.Errorf("pixel left of the stroke = %v, want black", got)
	}
}

func TestEncodePNG(t *testing.T) {
	s := New(8, 6)
	s.FillBackground(color.White)
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("decoded bounds = %v, want 8x6", b)
	}
}

func TestSaveSnapshot(t *testing.T) {
	dir := t.TempDir()
	s := New(4, 4)
	now := time.Date(2024, 3, 1, 12, 30, 5, 0, time.UTC)
	path, err := s.SaveSnapshot(dir, "canvas", now)
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if want := dir + "/20240301_123005_canvas.png"; path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat: %v", err)
	}
}

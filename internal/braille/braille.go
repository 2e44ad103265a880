// Package braille rasterises lines onto a grid of Unicode braille cells. Each
// terminal cell holds a 2x4 block of dots, so a w x h cell grid is a
// 2w x 4h pixel surface.
package braille

import (
	"image/color"
	"math"
)

const (
	DotsX = 2
	DotsY = 4
)

// dot bit for column rx, row ry inside a cell.
var dotBits = [DotsX][DotsY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Surface is a single-colour braille canvas. Colours passed to the drawing
// methods are ignored; styling is left to whoever prints the lines.
type Surface struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell dot mask
}

// New returns a surface of the given size in cells.
func New(cols, rows int) *Surface {
	s := &Surface{}
	s.resizeCells(cols, rows)
	return s
}

// Cells returns the grid size in cells.
func (s *Surface) Cells() (cols, rows int) { return s.w, s.h }

// Size returns the surface size in dots.
func (s *Surface) Size() (width, height int) { return s.w * DotsX, s.h * DotsY }

// Resize sets the pixel size, rounding up to whole cells, and clears the grid.
func (s *Surface) Resize(width, height int) {
	s.resizeCells((max(width, 0)+DotsX-1)/DotsX, (max(height, 0)+DotsY-1)/DotsY)
}

func (s *Surface) resizeCells(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	s.w, s.h = cols, rows
	s.m = make([][]uint8, rows)
	for i := range s.m {
		s.m[i] = make([]uint8, cols)
	}
}

// FillBackground clears every dot.
func (s *Surface) FillBackground(color.Color) {
	for _, row := range s.m {
		clear(row)
	}
}

// StrokeLine draws a one-dot-wide line. Endpoints may lie far outside the
// grid; the line is clipped before rasterising.
func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, _ color.Color, _ float64) {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return
	}
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, -1, -1, float64(w)+1, float64(h)+1)
	if !ok {
		return
	}
	s.drawLine(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Floor(x1)), int(math.Floor(y1)))
}

// Set turns on the dot at (x, y). Out-of-range dots are ignored.
func (s *Surface) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cx, rx := x/DotsX, x%DotsX
	cy, ry := y/DotsY, y%DotsY
	if cy >= s.h || cx >= s.w {
		return
	}
	s.m[cy][cx] |= dotBits[rx][ry]
}

// IsSet reports whether the dot at (x, y) is on.
func (s *Surface) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	cx, cy := x/DotsX, y/DotsY
	if cy >= s.h || cx >= s.w {
		return false
	}
	return s.m[cy][cx]&dotBits[x%DotsX][y%DotsY] != 0
}

// drawLine is Bresenham on the dot grid.
func (s *Surface) drawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		s.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Lines renders the grid, one string per row. Empty cells are spaces.
func (s *Surface) Lines() []string {
	out := make([]string, s.h)
	for y := 0; y < s.h; y++ {
		row := make([]rune, s.w)
		for x := 0; x < s.w; x++ {
			mask := s.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

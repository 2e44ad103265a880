package canvas

import "image/color"

// Surface is the minimal 2-D target the renderer draws on. Resize may reset
// any drawing attributes the surface keeps.
type Surface interface {
	Resize(width, height int)
	FillBackground(c color.Color)
	StrokeLine(x0, y0, x1, y1 float64, c color.Color, width float64)
}

// Style is the fixed paint used for every frame.
type Style struct {
	Background color.Color
	Stroke     color.Color
	Width      float64
}

// DefaultStyle is white 2px strokes on black.
var DefaultStyle = Style{
	Background: color.Black,
	Stroke:     color.White,
	Width:      2,
}

// Renderer repaints a Surface from the store through a viewport.
type Renderer struct {
	surface Surface
	style   Style
}

// NewRenderer binds a renderer to s. Nothing is painted until Redraw.
func NewRenderer(s Surface, style Style) *Renderer {
	return &Renderer{surface: s, style: style}
}

func (r *Renderer) Surface() Surface { return r.surface }
func (r *Renderer) Style() Style { return r.style }

// Redraw resizes the surface to the viewport, fills the background and strokes
// every segment in paint order.
func (r *Renderer) Redraw(v Viewport, segs []Segment) {
	r.surface.Resize(v.Width, v.Height)
	r.surface.FillBackground(r.style.Background)
	for _, seg := range segs {
		r.DrawSegment(v, seg)
	}
}

// DrawSegment strokes a single segment on top of what is already there.
func (r *Renderer) DrawSegment(v Viewport, seg Segment) {
	x0, y0 := v.ToScreen(seg.X0, seg.Y0)
	x1, y1 := v.ToScreen(seg.X1, seg.Y1)
	r.surface.StrokeLine(x0, y0, x1, y1, r.style.Stroke, r.style.Width)
}

// Package canvas implements an infinite drawing surface: a pan/zoom viewport
// over an unbounded world plane, an append-only store of line segments, and
// the pointer state machine that turns input events into strokes or viewport
// movement.
//
// Everything here is single-threaded. Each handler runs to completion and
// repaints the surface before returning.
package canvas

import (
	"log"

	"github.com/google/uuid"
)

// DefaultSensitivity is the wheel delta that doubles the scale in one step.
const DefaultSensitivity = 500

// Pointer is the cursor position and the position seen by the previous event,
// both in screen pixels.
type Pointer struct {
	X, Y         float64
	PrevX, PrevY float64
}

// Session is the mutable state of one drawing session.
type Session struct {
	ID       string
	Viewport Viewport
	Pointer  Pointer
	Store    Store
}

// NewSession returns a fresh session with an identity viewport.
func NewSession(width, height int) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Viewport: NewViewport(width, height),
	}
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger logs transitions and commands to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.log = l }
}

// WithSensitivity sets the wheel sensitivity. Non-positive values are ignored.
func WithSensitivity(k float64) Option {
	return func(m *Machine) {
		if k > 0 {
			m.sensitivity = k
		}
	}
}

// WithAnchor selects the zoom anchoring strategy.
func WithAnchor(a Anchor) Option {
	return func(m *Machine) { m.anchor = a }
}

// WithStyle sets the paint used by the renderer.
func WithStyle(s Style) Option {
	return func(m *Machine) { m.style = s }
}

// WithSession runs the machine on an existing session.
func WithSession(s *Session) Option {
	return func(m *Machine) { m.sess = s }
}

// Machine is the interaction state machine. It owns the session and a
// renderer bound to one surface.
type Machine struct {
	sess        *Session
	state       State
	mode        DrawMode
	renderer    *Renderer
	style       Style
	sensitivity float64
	anchor      Anchor
	log         *log.Logger
}

// New creates a machine drawing on s, sized width x height pixels, and paints
// the initial empty frame.
func New(s Surface, width, height int, opts ...Option) *Machine {
	m := &Machine{
		style:       DefaultStyle,
		sensitivity: DefaultSensitivity,
	}
	for _, o := range opts {
		o(m)
	}
	if m.sess == nil {
		m.sess = NewSession(width, height)
	} else {
		m.sess.Viewport.Resize(width, height)
	}
	m.renderer = NewRenderer(s, m.style)
	m.logf("session started %dx%d", width, height)
	m.Redraw()
	return m
}

func (m *Machine) State() State { return m.state }
func (m *Machine) Mode() DrawMode { return m.mode }
func (m *Machine) Session() *Session { return m.sess }
func (m *Machine) Viewport() Viewport { return m.sess.Viewport }
func (m *Machine) Segments() []Segment { return m.sess.Store.All() }
func (m *Machine) ZoomPercent() int { return m.sess.Viewport.ZoomPercent() }
func (m *Machine) Renderer() *Renderer { return m.renderer }
func (m *Machine) Pointer() Pointer { return m.sess.Pointer }
func (m *Machine) CursorWorld() (x, y float64) {
	return m.sess.Viewport.ToWorld(m.sess.Pointer.X, m.sess.Pointer.Y)
}

// Handle dispatches a decoded event to its handler.
func (m *Machine) Handle(ev Event) {
	switch ev := ev.(type) {
	case DownEvent:
		m.PointerDown(ev.Button, ev.X, ev.Y)
	case MoveEvent:
		m.PointerMove(ev.X, ev.Y)
	case UpEvent:
		m.PointerUp()
	case LeaveEvent:
		m.PointerLeave()
	case WheelEvent:
		m.Wheel(ev.DeltaY, ev.X, ev.Y)
	case ResizeEvent:
		m.Resize(ev.Width, ev.Height)
	}
}

// PointerDown starts a stroke (primary, brush mode) or a pan (secondary).
// Presses while a gesture is active are ignored; the gesture ends only on
// release or leave.
func (m *Machine) PointerDown(b Button, x, y float64) {
	if m.state != Idle {
		return
	}
	var next State
	switch b {
	case ButtonPrimary:
		if !m.mode.Draws() {
			return
		}
		next = Drawing
	case ButtonSecondary:
		next = Panning
	default:
		return
	}
	m.sess.Pointer = Pointer{X: x, Y: y, PrevX: x, PrevY: y}
	m.transition(next)
}

// PointerMove extends the stroke or pans the view, depending on the state.
func (m *Machine) PointerMove(x, y float64) {
	p := &m.sess.Pointer
	p.X, p.Y = x, y

	switch m.state {
	case Drawing:
		v := m.sess.Viewport
		x0, y0 := v.ToWorld(p.PrevX, p.PrevY)
		x1, y1 := v.ToWorld(p.X, p.Y)
		seg := Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}
		m.sess.Store.Append(seg)
		m.renderer.DrawSegment(v, seg)
	case Panning:
		m.sess.Viewport.Pan(p.X-p.PrevX, p.Y-p.PrevY)
		m.Redraw()
	}
	p.PrevX, p.PrevY = p.X, p.Y
}

// PointerUp ends any active gesture.
func (m *Machine) PointerUp() { m.release() }

// PointerLeave ends any active gesture when the pointer exits the surface.
func (m *Machine) PointerLeave() { m.release() }

func (m *Machine) release() {
	if m.state != Idle {
		m.transition(Idle)
	}
}

// Wheel zooms around the cursor. The state is unchanged.
func (m *Machine) Wheel(deltaY, x, y float64) {
	m.sess.Viewport.Zoom(deltaY, x, y, m.sensitivity, m.anchor)
	m.Redraw()
}

// Resize adopts a new surface size and repaints. Offset and scale are kept.
func (m *Machine) Resize(width, height int) {
	m.sess.Viewport.Resize(width, height)
	m.logf("resize %dx%d", width, height)
	m.Redraw()
}

// Redraw repaints the whole surface from the store.
func (m *Machine) Redraw() {
	m.renderer.Redraw(m.sess.Viewport, m.sess.Store.All())
}

// Clear empties the store and repaints.
func (m *Machine) Clear() {
	n := m.sess.Store.Len()
	m.sess.Store.Clear()
	m.logf("clear: dropped %d segments", n)
	m.Redraw()
}

// SetMode switches the draw mode. An active gesture is released first.
func (m *Machine) SetMode(mode DrawMode) {
	if mode == m.mode {
		return
	}
	m.release()
	m.logf("mode %s -> %s", m.mode, mode)
	m.mode = mode
}

// PanBy moves the view by a screen delta outside of a pointer gesture, as
// the keyboard does.
func (m *Machine) PanBy(dx, dy float64) {
	m.sess.Viewport.Pan(dx, dy)
	m.Redraw()
}

// ResetView restores the identity viewport, keeping the surface size.
func (m *Machine) ResetView() {
	v := &m.sess.Viewport
	v.OffsetX, v.OffsetY, v.Scale = 0, 0, 1
	m.Redraw()
}

// Import appends segs in order and repaints.
func (m *Machine) Import(segs []Segment) {
	for _, seg := range segs {
		m.sess.Store.Append(seg)
	}
	m.logf("import: %d segments", len(segs))
	m.Redraw()
}

// RenderScaled paints the current view onto s at k times the resolution. The
// framing is identical: the offset is kept and the scale multiplied by k.
func (m *Machine) RenderScaled(s Surface, k float64) {
	v := m.sess.Viewport
	v.Scale *= k
	v.Width = int(float64(v.Width) * k)
	v.Height = int(float64(v.Height) * k)
	style := m.style
	style.Width *= k
	NewRenderer(s, style).Redraw(v, m.sess.Store.All())
}

func (m *Machine) transition(to State) {
	m.logf("state %s -> %s", m.state, to)
	m.state = to
}

func (m *Machine) logf(format string, args ...any) {
	if m.log == nil {
		return
	}
	id := m.sess.ID
	if len(id) > 8 {
		id = id[:8]
	}
	m.log.Printf("[%s] "+format, append([]any{id}, args...)...)
}

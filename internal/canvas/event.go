package canvas

// Event is a decoded input record. Front-ends translate device input into
// these and pass them to Machine.Handle.
type Event interface {
	isEvent()
}

// DownEvent is a pointer button press at screen position (X, Y).
type DownEvent struct {
	Button Button
	X, Y   float64
}

// MoveEvent is a pointer motion to screen position (X, Y).
type MoveEvent struct {
	X, Y float64
}

// UpEvent is a pointer button release.
type UpEvent struct{}

// LeaveEvent is sent when the pointer leaves the surface.
type LeaveEvent struct{}

// WheelEvent is a vertical scroll of DeltaY with the pointer at (X, Y).
// Positive deltas scroll down, which zooms out.
type WheelEvent struct {
	DeltaY float64
	X, Y   float64
}

// ResizeEvent reports a new surface size in pixels.
type ResizeEvent struct {
	Width, Height int
}

func (DownEvent) isEvent()   {}
func (MoveEvent) isEvent()   {}
func (UpEvent) isEvent()     {}
func (LeaveEvent) isEvent()  {}
func (WheelEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}

package gui

import "infcanvas/internal/canvas"

// frameInput is the mouse state sampled once per tick.
type frameInput struct {
	X, Y   int
	Width  int
	Height int

	PrimaryDown, PrimaryUp     bool
	SecondaryDown, SecondaryUp bool

	// WheelY is ebiten's vertical wheel offset, positive when scrolled up.
	WheelY float64
}

func (in frameInput) inside() bool {
	return in.X >= 0 && in.Y >= 0 && in.X < in.Width && in.Y < in.Height
}

// decode turns one tick of input into machine events, in dispatch order.
// Leave is only seen when the cursor position is outside the window. ebiten
// keeps the last in-window position once the cursor exits with no button
// held, so leave rarely fires then; the release still ends the gesture.
// last is the previous tick; step is the wheel delta per notch. A still
// cursor produces no move, so a held button does not stack empty segments.
func decode(in, last frameInput, step float64) []canvas.Event {
	x, y := float64(in.X), float64(in.Y)
	if !in.inside() {
		if last.inside() {
			return []canvas.Event{canvas.LeaveEvent{}}
		}
		return nil
	}

	var evs []canvas.Event
	if in.X != last.X || in.Y != last.Y || !last.inside() {
		evs = append(evs, canvas.MoveEvent{X: x, Y: y})
	}
	if in.PrimaryDown {
		evs = append(evs, canvas.DownEvent{Button: canvas.ButtonPrimary, X: x, Y: y})
	}
	if in.SecondaryDown {
		evs = append(evs, canvas.DownEvent{Button: canvas.ButtonSecondary, X: x, Y: y})
	}
	if in.PrimaryUp || in.SecondaryUp {
		evs = append(evs, canvas.UpEvent{})
	}
	if in.WheelY != 0 {
		evs = append(evs, canvas.WheelEvent{DeltaY: -in.WheelY * step, X: x, Y: y})
	}
	return evs
}

package canvas

// State is the interaction state of the machine.
type State int

const (
	Idle State = iota
	Drawing
	Panning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Panning:
		return "panning"
	}
	return "unknown"
}

// Button identifies a pointer button. Values follow the DOM numbering.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonMiddle    Button = 1
	ButtonSecondary Button = 2
)

// DrawMode is the tool selected in the toolbar. Only ModeBrush produces
// geometry; the others are placeholders for shapes the store cannot hold yet.
type DrawMode int

const (
	ModeBrush DrawMode = iota
	ModeSelection
	ModeRectangle
	ModeText
)

// Modes lists every draw mode in toolbar order.
var Modes = []DrawMode{ModeBrush, ModeSelection, ModeRectangle, ModeText}

func (m DrawMode) String() string {
	switch m {
	case ModeBrush:
		return "brush"
	case ModeSelection:
		return "selection"
	case ModeRectangle:
		return "rectangle"
	case ModeText:
		return "text"
	}
	return "unknown"
}

// Draws reports whether a primary press in this mode starts a stroke.
func (m DrawMode) Draws() bool { return m == ModeBrush }

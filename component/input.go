package component

// KeyEventKind distinguishes the input events the game loop reacts to.
type KeyEventKind int

const (
	KeyDown KeyEventKind = iota
	KeyUp
	Quit
)

// Key is a key the game loop tracks.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEscape
)

// KeyEvent is a single input event drained from an event source. Sources
// report edges only, so there are no auto-repeat events.
type KeyEvent struct {
	Kind KeyEventKind
	Key  Key
}

// Direction returns the movement direction bound to k, or DirNone.
func (k Key) Direction() Direction {
	switch k {
	case KeyArrowUp:
		return DirUp
	case KeyArrowDown:
		return DirDown
	case KeyArrowLeft:
		return DirLeft
	case KeyArrowRight:
		return DirRight
	default:
		return DirNone
	}
}

package system

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bardowalk/component"
)

// EventSource yields the input events that arrived since the last poll.
type EventSource interface {
	Poll(dst []component.KeyEvent) []component.KeyEvent
}

var trackedKeys = map[ebiten.Key]component.Key{
	ebiten.KeyArrowUp:    component.KeyArrowUp,
	ebiten.KeyArrowDown:  component.KeyArrowDown,
	ebiten.KeyArrowLeft:  component.KeyArrowLeft,
	ebiten.KeyArrowRight: component.KeyArrowRight,
	ebiten.KeyEscape:     component.KeyEscape,
}

// KeyboardSource turns ebiten's per-tick key edges into key events. Key-downs
// of a tick are reported before its key-ups so a tap inside one tick still
// presses and releases in order.
type KeyboardSource struct {
	keys []ebiten.Key
}

func NewKeyboardSource() *KeyboardSource {
	return &KeyboardSource{}
}

func (s *KeyboardSource) Poll(dst []component.KeyEvent) []component.KeyEvent {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, component.KeyEvent{Kind: component.Quit})
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key, ok := trackedKeys[k]; ok {
			dst = append(dst, component.KeyEvent{Kind: component.KeyDown, Key: key})
		}
	}

	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key, ok := trackedKeys[k]; ok {
			dst = append(dst, component.KeyEvent{Kind: component.KeyUp, Key: key})
		}
	}
	return dst
}

type InputSystem struct {
	Source EventSource
	Debug  bool

	events []component.KeyEvent
}

func NewInputSystem(source EventSource, debug bool) *InputSystem {
	return &InputSystem{Source: source, Debug: debug}
}

// Update drains the source into q. It reports true once a quit request or an
// Escape press is seen; events after it are not applied.
func (i *InputSystem) Update(q *component.MovementQueue) bool {
	if i == nil || i.Source == nil || q == nil {
		return false
	}

	i.events = i.Source.Poll(i.events[:0])
	for _, evt := range i.events {
		if i.apply(q, evt) {
			return true
		}
	}
	return false
}

func (i *InputSystem) apply(q *component.MovementQueue, evt component.KeyEvent) bool {
	switch evt.Kind {
	case component.Quit:
		return true
	case component.KeyDown:
		if evt.Key == component.KeyEscape {
			return true
		}
		dir := evt.Key.Direction()
		if dir == component.DirNone {
			return false
		}
		q.Press(dir)
		if i.Debug {
			log.Printf("input: press %s %s", dir, q)
		}
	case component.KeyUp:
		dir := evt.Key.Direction()
		if dir == component.DirNone {
			return false
		}
		if !q.Release(dir) {
			if i.Debug {
				log.Printf("input: release of %s without press", dir)
			}
			return false
		}
		if i.Debug {
			log.Printf("input: release %s %s", dir, q)
		}
	}
	return false
}

package component

import (
	"fmt"
	"strings"
)

// MovementSlots is the fixed capacity of a MovementQueue.
const MovementSlots = 4

// MovementQueue holds the currently held direction keys, most recently
// pressed first. Empty slots hold DirNone and always trail the held keys.
type MovementQueue struct {
	slots [MovementSlots]Direction
}

// NewMovementQueue returns a queue with every slot empty.
func NewMovementQueue() MovementQueue {
	return MovementQueue{}
}

// Press records d as the newest held direction. Pressing a direction that is
// already held leaves the queue unchanged.
func (q *MovementQueue) Press(d Direction) bool {
	if d == DirNone || q.Contains(d) {
		return false
	}
	copy(q.slots[1:], q.slots[:MovementSlots-1])
	q.slots[0] = d
	return true
}

// Release drops d and shifts the later slots forward, refilling the tail with
// DirNone. Releasing a direction that is not held is a no-op, which covers
// key-up events whose key-down was never seen.
func (q *MovementQueue) Release(d Direction) bool {
	if d == DirNone {
		return false
	}
	idx := q.index(d)
	if idx < 0 {
		return false
	}
	copy(q.slots[idx:], q.slots[idx+1:])
	q.slots[MovementSlots-1] = DirNone
	return true
}

// Active returns the direction in the first slot.
func (q *MovementQueue) Active() Direction {
	return q.slots[0]
}

func (q *MovementQueue) Contains(d Direction) bool {
	return q.index(d) >= 0
}

// Slots returns a copy of the queue contents.
func (q *MovementQueue) Slots() [MovementSlots]Direction {
	return q.slots
}

func (q *MovementQueue) Len() int {
	return len(q.slots)
}

func (q *MovementQueue) index(d Direction) int {
	for i, s := range q.slots {
		if s == d {
			return i
		}
	}
	return -1
}

func (q *MovementQueue) String() string {
	names := make([]string, len(q.slots))
	for i, s := range q.slots {
		names[i] = s.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(names, " "))
}

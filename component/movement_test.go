package component

import (
	"math/rand"
	"testing"
)

func slots(ds ...Direction) [MovementSlots]Direction {
	var out [MovementSlots]Direction
	copy(out[:], ds)
	return out
}

func TestMovementQueuePressRelease(t *testing.T) {
	tests := []struct {
		name       string
		ops        func(q *MovementQueue)
		wantSlots  [MovementSlots]Direction
		wantActive Direction
	}{
		{
			name:       "empty",
			ops:        func(q *MovementQueue) {},
			wantSlots:  slots(),
			wantActive: DirNone,
		},
		{
			name:       "press_right",
			ops:        func(q *MovementQueue) { q.Press(DirRight) },
			wantSlots:  slots(DirRight),
			wantActive: DirRight,
		},
		{
			name: "press_up_after_right",
			ops: func(q *MovementQueue) {
				q.Press(DirRight)
				q.Press(DirUp)
			},
			wantSlots:  slots(DirUp, DirRight),
			wantActive: DirUp,
		},
		{
			name: "release_newest_falls_back",
			ops: func(q *MovementQueue) {
				q.Press(DirRight)
				q.Press(DirUp)
				q.Release(DirUp)
			},
			wantSlots:  slots(DirRight),
			wantActive: DirRight,
		},
		{
			name: "release_oldest_keeps_newest",
			ops: func(q *MovementQueue) {
				q.Press(DirRight)
				q.Press(DirUp)
				q.Press(DirLeft)
				q.Release(DirRight)
			},
			wantSlots:  slots(DirLeft, DirUp),
			wantActive: DirLeft,
		},
		{
			name: "release_only_key",
			ops: func(q *MovementQueue) {
				q.Press(DirRight)
				q.Release(DirRight)
			},
			wantSlots:  slots(),
			wantActive: DirNone,
		},
		{
			name: "all_four_held",
			ops: func(q *MovementQueue) {
				q.Press(DirUp)
				q.Press(DirDown)
				q.Press(DirLeft)
				q.Press(DirRight)
			},
			wantSlots:  slots(DirRight, DirLeft, DirDown, DirUp),
			wantActive: DirRight,
		},
		{
			name: "release_absent_is_noop",
			ops: func(q *MovementQueue) {
				q.Press(DirLeft)
				q.Release(DirDown)
			},
			wantSlots:  slots(DirLeft),
			wantActive: DirLeft,
		},
		{
			name:       "press_none_is_noop",
			ops:        func(q *MovementQueue) { q.Press(DirNone) },
			wantSlots:  slots(),
			wantActive: DirNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := NewMovementQueue()
			tc.ops(&q)
			if got := q.Slots(); got != tc.wantSlots {
				t.Fatalf("slots = %v, want %v", got, tc.wantSlots)
			}
			if got := q.Active(); got != tc.wantActive {
				t.Fatalf("Active() = %v, want %v", got, tc.wantActive)
			}
		})
	}
}

func TestMovementQueuePressIdempotent(t *testing.T) {
	q := NewMovementQueue()
	q.Press(DirRight)
	q.Press(DirUp)
	before := q.Slots()
	if q.Press(DirRight) {
		t.Fatalf("Press of held direction reported a change")
	}
	if q.Press(DirUp) {
		t.Fatalf("Press of active direction reported a change")
	}
	if got := q.Slots(); got != before {
		t.Fatalf("slots changed on repeated press: %v -> %v", before, got)
	}
}

func TestMovementQueueReleaseAbsent(t *testing.T) {
	q := NewMovementQueue()
	if q.Release(DirUp) {
		t.Fatalf("Release on empty queue reported a change")
	}
	if got := q.Slots(); got != slots() {
		t.Fatalf("slots = %v, want all none", got)
	}
}

// Random press/release sequences must keep the queue at full length, free of
// duplicates, with every held key ahead of every empty slot.
func TestMovementQueueInvariants(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	rng := rand.New(rand.NewSource(1))
	q := NewMovementQueue()
	held := map[Direction]bool{}

	for i := 0; i < 5000; i++ {
		d := dirs[rng.Intn(len(dirs))]
		if rng.Intn(2) == 0 {
			q.Press(d)
			held[d] = true
		} else {
			q.Release(d)
			delete(held, d)
		}

		if q.Len() != MovementSlots {
			t.Fatalf("step %d: len = %d, want %d", i, q.Len(), MovementSlots)
		}
		seen := map[Direction]int{}
		sawNone := false
		for _, s := range q.Slots() {
			if s == DirNone {
				sawNone = true
				continue
			}
			if sawNone {
				t.Fatalf("step %d: held key after empty slot in %v", i, q.String())
			}
			seen[s]++
			if seen[s] > 1 {
				t.Fatalf("step %d: duplicate %v in %v", i, s, q.String())
			}
		}
		for d := range held {
			if !q.Contains(d) {
				t.Fatalf("step %d: held %v missing from %v", i, d, q.String())
			}
		}
		if len(seen) != len(held) {
			t.Fatalf("step %d: queue %v holds %d keys, want %d", i, q.String(), len(seen), len(held))
		}
	}
}

func TestMovementQueueString(t *testing.T) {
	q := NewMovementQueue()
	q.Press(DirRight)
	q.Press(DirUp)
	if got, want := q.String(), "[up right none none]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

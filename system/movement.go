package system

import (
	"github.com/milk9111/bardowalk/common"
	"github.com/milk9111/bardowalk/component"
)

// Step advances the player by one tick given the held directions.
//
// The newest held direction picks the velocity and facing. Holding both keys
// of an axis anywhere in the queue zeroes that axis. The walk cycle only
// advances while both axes are moving, which four-way movement never
// produces, so the sprite keeps its current frame.
func Step(q component.MovementQueue, p component.Player, t component.Tuning) component.Player {
	next := p

	active := q.Active()
	next.Velocity = active.Velocity(t.Speed)
	if active != component.DirNone {
		next.Facing = active
	}

	if opposed(q, component.DirUp) {
		next.Velocity.Y = 0
	}
	if opposed(q, component.DirLeft) {
		next.Velocity.X = 0
	}

	if animates(next.Velocity) {
		frames := t.FramesPerDirection
		if frames <= 0 {
			frames = 1
		}
		next.Frame = (next.Frame + 1) % frames
	}

	next.Position = next.Position.Add(next.Velocity)
	return next
}

func opposed(q component.MovementQueue, d component.Direction) bool {
	return q.Contains(d) && q.Contains(d.Opposite())
}

// animates gates the walk cycle on movement along both axes at once.
func animates(v common.Point) bool {
	return v.X != 0 && v.Y != 0
}

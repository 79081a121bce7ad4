package component

import "github.com/milk9111/bardowalk/common"

// Player is the state of the single walking sprite. It is a plain value and
// is replaced wholesale every tick.
type Player struct {
	Position common.Point
	Velocity common.Point
	Facing   Direction
	Frame    int
	// Sprite is the sheet region of frame 0 in row 0; its size is the size of
	// every frame.
	Sprite common.Rect
}

// NewPlayer returns the start-of-game player: at the origin, standing still,
// facing right.
func NewPlayer(sprite common.Rect) Player {
	return Player{
		Facing: DirRight,
		Sprite: sprite,
	}
}

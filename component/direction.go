package component

import "github.com/milk9111/bardowalk/common"

// Direction is a movement direction tag. DirNone is the empty-slot sentinel.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var directionName = map[Direction]string{
	DirNone:  "none",
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

func (d Direction) String() string {
	if name, ok := directionName[d]; ok {
		return name
	}
	return "invalid"
}

// SheetRow returns the spritesheet row holding the walk cycle for d.
func (d Direction) SheetRow() int {
	switch d {
	case DirUp:
		return 3
	case DirDown:
		return 0
	case DirLeft:
		return 1
	case DirRight:
		return 2
	default:
		return 0
	}
}

// Velocity returns the velocity for moving in d at the given speed.
func (d Direction) Velocity(speed int) common.Point {
	switch d {
	case DirUp:
		return common.Pt(0, -speed)
	case DirDown:
		return common.Pt(0, speed)
	case DirLeft:
		return common.Pt(-speed, 0)
	case DirRight:
		return common.Pt(speed, 0)
	default:
		return common.Point{}
	}
}

// Opposite returns the direction facing away from d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

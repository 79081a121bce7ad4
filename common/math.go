package common

// Point is an integer 2D vector used for positions and velocities.
type Point struct {
	X, Y int
}

func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Offset returns p moved by dx, dy.
func (p Point) Offset(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

package geom

import (
	"cmp"
	"fmt"
)

// Point is a position (or a displacement) in the integer plane.
// The zero value is the origin.
type Point struct {
	X, Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q, componentwise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q, componentwise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Step returns the neighbour of p one unit away in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Deltas()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Abs returns the point with both components made non-negative.
func (p Point) Abs() Point {
	return Point{X: abs(p.X), Y: abs(p.Y)}
}

// Manhattan returns |X| + |Y|.
// For a displacement b.Sub(a) this is the taxicab distance between a and b.
func (p Point) Manhattan() int32 {
	return abs(p.X) + abs(p.Y)
}

// RotateLeft rotates p a quarter turn counter-clockwise about the origin.
func (p Point) RotateLeft() Point {
	return Point{X: -p.Y, Y: p.X}
}

// RotateRight rotates p a quarter turn clockwise about the origin.
func (p Point) RotateRight() Point {
	return Point{X: p.Y, Y: -p.X}
}

// Compare orders points by Y, then by X.
// It returns -1, 0 or +1 in the manner of cmp.Compare.
func (p Point) Compare(q Point) int {
	if c := cmp.Compare(p.Y, q.Y); c != 0 {
		return c
	}
	return cmp.Compare(p.X, q.X)
}

// Less reports whether p sorts before q under Compare.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Replay applies each direction of path in turn, starting at from,
// and returns the final position.
func Replay(from Point, path []Direction) Point {
	for _, d := range path {
		from = from.Step(d)
	}
	return from
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

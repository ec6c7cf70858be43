package hex

import (
	"fmt"
	"iter"
)

// Coordinate is an axial hex coordinate.
type Coordinate struct {
	Q, R int32
}

// S is the derived cube coordinate; Q + R + S == 0.
func (c Coordinate) S() int32 { return -c.Q - c.R }

// Step returns the neighbour of c in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	dq, dr := d.Deltas()
	return Coordinate{Q: c.Q + dq, R: c.R + dr}
}

// Walk applies every direction of path in turn.
func (c Coordinate) Walk(path []Direction) Coordinate {
	for _, d := range path {
		c = c.Step(d)
	}
	return c
}

// Neighbors iterates the six adjacent coordinates, clockwise from East.
func (c Coordinate) Neighbors() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for d := range Directions() {
			if !yield(c.Step(d)) {
				return
			}
		}
	}
}

// Distance is the number of steps between c and o.
func (c Coordinate) Distance(o Coordinate) int32 {
	dq, dr, ds := abs(c.Q-o.Q), abs(c.R-o.R), abs(c.S()-o.S())
	return max(dq, dr, ds)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

package geom

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognised input.
var ErrUnknownDirection = errors.New("geom: unknown direction")

// Direction is one of the four orthogonal directions.
// The zero value is Up.
type Direction uint8

const (
	// Up is +y.
	Up Direction = iota
	// Down is -y.
	Down
	// Left is -x.
	Left
	// Right is +x.
	Right
)

// orthogonal is the canonical enumeration order; search tie-breaks follow it.
var orthogonal = [4]Direction{Up, Down, Left, Right}

var diagonals = [4][2]Direction{
	{Up, Left},
	{Up, Right},
	{Down, Left},
	{Down, Right},
}

// Deltas returns the unit displacement (dx, dy) of d.
func (d Direction) Deltas() (dx, dy int32) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic(fmt.Sprintf("geom: invalid direction %d", uint8(d)))
}

// Delta returns Deltas as a Point.
func (d Direction) Delta() Point {
	dx, dy := d.Deltas()
	return Point{X: dx, Y: dy}
}

// TurnRight returns the direction a quarter turn clockwise from d.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

// TurnLeft returns the direction a quarter turn counter-clockwise from d.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Letter returns the single-letter form used by ParseDirection: U, D, L or R.
func (d Direction) Letter() byte {
	return d.String()[0]
}

// Orthogonal iterates the four directions in the order Up, Down, Left, Right.
func Orthogonal() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, d := range orthogonal {
			if !yield(d) {
				return
			}
		}
	}
}

// Diagonals iterates the four diagonal (vertical, horizontal) pairs:
// Up-Left, Up-Right, Down-Left, Down-Right.
func Diagonals() iter.Seq2[Direction, Direction] {
	return func(yield func(Direction, Direction) bool) {
		for _, pair := range diagonals {
			if !yield(pair[0], pair[1]) {
				return
			}
		}
	}
}

// FromDelta is the inverse of Delta. It reports false when p is not one of
// the four unit vectors.
func FromDelta(p Point) (Direction, bool) {
	switch p {
	case Point{X: 0, Y: 1}:
		return Up, true
	case Point{X: 0, Y: -1}:
		return Down, true
	case Point{X: -1, Y: 0}:
		return Left, true
	case Point{X: 1, Y: 0}:
		return Right, true
	}
	return Up, false
}

// ParseDirection accepts the names Up/Down/Left/Right, their initials
// U/D/L/R, and the compass forms N/S/W/E, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "n", "north":
		return Up, nil
	case "down", "d", "s", "south":
		return Down, nil
	case "left", "l", "w", "west":
		return Left, nil
	case "right", "r", "e", "east":
		return Right, nil
	}
	return Up, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

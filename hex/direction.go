package hex

import (
	"errors"
	"fmt"
	"iter"
)

// ErrParseDirections is returned when a direction string holds an
// unrecognised token.
var ErrParseDirections = errors.New("hex: parsing directions")

// Direction is one of the six hex directions.
type Direction uint8

const (
	East Direction = iota
	Southeast
	Southwest
	West
	Northwest
	Northeast
)

// Deltas returns the axial displacement of one step in d.
func (d Direction) Deltas() (dq, dr int32) {
	switch d {
	case East:
		return 1, 0
	case Southeast:
		return 0, 1
	case Southwest:
		return -1, 1
	case West:
		return -1, 0
	case Northwest:
		return 0, -1
	case Northeast:
		return 1, -1
	}
	panic(fmt.Sprintf("hex: invalid direction %d", uint8(d)))
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + 3) % 6
}

// String returns the compass token of d: e, se, sw, w, nw or ne.
func (d Direction) String() string {
	switch d {
	case East:
		return "e"
	case Southeast:
		return "se"
	case Southwest:
		return "sw"
	case West:
		return "w"
	case Northwest:
		return "nw"
	case Northeast:
		return "ne"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Directions iterates all six directions clockwise from East.
func Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for d := East; d <= Northeast; d++ {
			if !yield(d) {
				return
			}
		}
	}
}

// ParseDirections splits s into consecutive tokens e, se, sw, w, nw, ne
// (case sensitive). An empty string yields an empty slice.
func ParseDirections(s string) ([]Direction, error) {
	out := make([]Direction, 0, len(s))
	for i := 0; i < len(s); {
		d, n := parseHead(s[i:])
		if n == 0 {
			return nil, fmt.Errorf("%w: bad token at offset %d in %q", ErrParseDirections, i, s)
		}
		out = append(out, d)
		i += n
	}
	return out, nil
}

// parseHead decodes the direction at the start of s and its byte length,
// or 0 when s does not start with a token.
func parseHead(s string) (Direction, int) {
	if s == "" {
		return 0, 0
	}
	switch s[0] {
	case 'e':
		return East, 1
	case 'w':
		return West, 1
	}
	if len(s) < 2 {
		return 0, 0
	}
	switch s[:2] {
	case "se":
		return Southeast, 2
	case "sw":
		return Southwest, 2
	case "nw":
		return Northwest, 2
	case "ne":
		return Northeast, 2
	}
	return 0, 0
}

// Package tile defines how a grid cell is written as text and parsed back,
// plus a few stock tile types for common puzzle maps.
//
// Every tile type used with tilemap.Read declares a fixed display width:
// each input line is cut into chunks of exactly that many characters and
// each chunk is parsed independently. Output reverses the process.
//
// Stock tiles:
//
//   - Bool:      "#" / ".", width 1.
//   - Digit:     "0".."9", width 1.
//   - TwoDigits: " 00".." 99", width 3.
//
// All stock tiles implement RGB so an external renderer can colour them.
package tile

import (
	"errors"
	"fmt"
)

// ErrPartialChunk indicates that a line's length is not a multiple of the
// tile display width, leaving a trailing fragment.
var ErrPartialChunk = errors.New("tile: line length is not a multiple of the display width")

// ErrInvalidTile indicates that a chunk is not a valid textual tile.
var ErrInvalidTile = errors.New("tile: invalid tile")

// Widther is implemented by tile types with a fixed display width.
// DisplayWidth must not depend on the receiver's value: it is called
// on the zero value.
type Widther interface {
	DisplayWidth() int
}

// Tile is a tile type that can be written as text.
type Tile interface {
	Widther
	fmt.Stringer
}

// Parser converts one chunk of text into a tile.
type Parser[T any] func(chunk string) (T, error)

// RGB is implemented by tiles which can be drawn as a single colour.
type RGB interface {
	RGB() [3]uint8
}

// WidthOf returns the display width declared by T, or 0 when T does not
// implement Widther.
func WidthOf[T any]() int {
	var zero T
	if w, ok := any(zero).(Widther); ok {
		return w.DisplayWidth()
	}
	return 0
}

// Chunks splits s into consecutive substrings of exactly width runes.
// A trailing fragment shorter than width is reported as ErrPartialChunk,
// and the fragment itself is returned as the final element.
// Width must be positive.
func Chunks(s string, width int) ([]string, error) {
	if width <= 0 {
		panic(fmt.Sprintf("tile: chunk width must be positive, got %d", width))
	}
	runes := []rune(s)
	chunks := make([]string, 0, len(runes)/width+1)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			chunks = append(chunks, string(runes[start:]))
			return chunks, ErrPartialChunk
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks, nil
}

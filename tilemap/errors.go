package tilemap

import (
	"errors"
	"fmt"
)

var (
	// ErrTileConversion indicates that a chunk of input text was not a valid tile.
	ErrTileConversion = errors.New("tilemap: converting tile")
	// ErrNotRectangular indicates input rows of differing tile counts.
	ErrNotRectangular = errors.New("tilemap: map must be rectangular")
	// ErrRead indicates a failure of the underlying reader.
	ErrRead = errors.New("tilemap: reading input")
)

// TileError reports the chunk of text which failed to parse.
// It matches ErrTileConversion under errors.Is and unwraps to the cause.
type TileError struct {
	Line   int    // 1-based input line, counted top to bottom
	Column int    // 0-based tile index within the line
	Raw    string // offending chunk
	Err    error  // parser failure
}

func (e *TileError) Error() string {
	return fmt.Sprintf("tilemap: converting tile from %q (line %d, tile %d): %v", e.Raw, e.Line, e.Column, e.Err)
}

func (e *TileError) Unwrap() error { return e.Err }

func (e *TileError) Is(target error) bool { return target == ErrTileConversion }

package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/katalvlaran/gridkit/tile"
)

// maxLine bounds a single input line; puzzle maps are far narrower.
const maxLine = 1 << 20

// Read parses a map from r.
//
// Input is in natural graphical order: the first line is the top row. Each
// non-empty line is cut into chunks of T's display width and every chunk is
// handed to parse. The last line becomes row 0 and the map sits at the
// origin.
//
// Errors:
//   - a chunk parse failure, or a line that does not divide into whole
//     chunks, returns a *TileError (errors.Is ErrTileConversion);
//   - rows with differing tile counts return ErrNotRectangular, checked
//     after every line has been parsed;
//   - reader failures are wrapped with ErrRead.
//
// No partial map is returned on error.
func Read[T tile.Widther](r io.Reader, parse tile.Parser[T]) (*Map[T], error) {
	width := tile.WidthOf[T]()
	if width <= 0 {
		return nil, fmt.Errorf("%w: %T declares display width %d", ErrTileConversion, *new(T), width)
	}

	var rows [][]T
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	for line := 1; sc.Scan(); line++ {
		chunks, err := tile.Chunks(sc.Text(), width)
		if err != nil {
			last := len(chunks) - 1
			return nil, &TileError{Line: line, Column: last, Raw: chunks[last], Err: err}
		}
		if len(chunks) == 0 {
			continue
		}
		row := make([]T, 0, len(chunks))
		for col, chunk := range chunks {
			t, err := parse(chunk)
			if err != nil {
				return nil, &TileError{Line: line, Column: col, Raw: chunk, Err: err}
			}
			row = append(row, t)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, ErrNotRectangular
		}
	}

	// the origin is the bottom line
	slices.Reverse(rows)
	return FromRows(rows), nil
}

// ReadString parses a map from s; see Read.
func ReadString[T tile.Widther](s string, parse tile.Parser[T]) (*Map[T], error) {
	return Read(strings.NewReader(s), parse)
}

// ReadFile parses a map from the file at path; see Read.
// Failure to open the file is wrapped with ErrRead.
func ReadFile[T tile.Widther](path string, parse tile.Parser[T]) (*Map[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()
	return Read(f, parse)
}

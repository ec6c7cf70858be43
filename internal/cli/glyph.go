package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/gridkit/tile"
)

// glyph is a one-character tile of any kind, used to display maps whose
// alphabet is unknown.
type glyph rune

func parseGlyph(chunk string) (glyph, error) {
	r, n := utf8.DecodeRuneInString(chunk)
	if n == 0 || n != len(chunk) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: glyph %q", tile.ErrInvalidTile, chunk)
	}
	return glyph(r), nil
}

func (glyph) DisplayWidth() int { return 1 }

func (g glyph) String() string { return string(rune(g)) }

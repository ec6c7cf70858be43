package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/tile"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("3, -4")
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(3, -4), p)

	for _, bad := range []string{"", "3", "3;4", "a,1", "1,b", "1,99999999999"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseYearDay(t *testing.T) {
	y, d, err := parseYearDay("2021", "9")
	require.NoError(t, err)
	assert.Equal(t, 2021, y)
	assert.Equal(t, 9, d)

	for _, args := range [][2]string{{"2014", "1"}, {"x", "1"}, {"2021", "0"}, {"2021", "26"}, {"2021", "x"}} {
		_, _, err := parseYearDay(args[0], args[1])
		assert.Error(t, err, args)
	}
}

func TestParseGlyph(t *testing.T) {
	g, err := parseGlyph("é")
	require.NoError(t, err)
	assert.Equal(t, "é", g.String())

	_, err = parseGlyph("ab")
	assert.ErrorIs(t, err, tile.ErrInvalidTile)
	_, err = parseGlyph("")
	assert.ErrorIs(t, err, tile.ErrInvalidTile)
}

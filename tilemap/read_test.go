package tilemap_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/tile"
	"github.com/katalvlaran/gridkit/tilemap"
)

func TestRead_TopLineIsHighestRow(t *testing.T) {
	m, err := tilemap.ReadString("#.\n.#\n##\n", tile.ParseBool)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, geom.Point{}, m.Offset())

	assert.Equal(t, tile.Bool(true), m.At(geom.Pt(0, 2)))
	assert.Equal(t, tile.Bool(false), m.At(geom.Pt(1, 2)))
	assert.Equal(t, tile.Bool(true), m.At(geom.Pt(1, 1)))
	assert.Equal(t, tile.Bool(true), m.At(geom.Pt(0, 0)))
	assert.Equal(t, tile.Bool(true), m.At(geom.Pt(1, 0)))
}

func TestRead_SkipsEmptyLines(t *testing.T) {
	m, err := tilemap.ReadString("\n#.\n\n.#", tile.ParseBool)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, tile.Bool(true), m.At(geom.Pt(0, 1)))
}

func TestRead_WideTiles(t *testing.T) {
	m, err := tilemap.ReadString(" 01 02\n 03  4\n", tile.ParseTwoDigits)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, tile.TwoDigits(1), m.At(geom.Pt(0, 1)))
	assert.Equal(t, tile.TwoDigits(4), m.At(geom.Pt(1, 0)))
}

func TestRead_Errors(t *testing.T) {
	t.Run("BadTile", func(t *testing.T) {
		_, err := tilemap.ReadString("##\n#x\n", tile.ParseBool)
		require.Error(t, err)
		assert.ErrorIs(t, err, tilemap.ErrTileConversion)
		assert.ErrorIs(t, err, tile.ErrInvalidTile)

		var te *tilemap.TileError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, 2, te.Line)
		assert.Equal(t, 1, te.Column)
		assert.Equal(t, "x", te.Raw)
	})

	t.Run("PartialChunk", func(t *testing.T) {
		_, err := tilemap.ReadString(" 01 0\n", tile.ParseTwoDigits)
		assert.ErrorIs(t, err, tilemap.ErrTileConversion)
		assert.ErrorIs(t, err, tile.ErrPartialChunk)

		var te *tilemap.TileError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, " 0", te.Raw)
	})

	t.Run("NotRectangular", func(t *testing.T) {
		_, err := tilemap.ReadString("#.\n#\n", tile.ParseBool)
		assert.ErrorIs(t, err, tilemap.ErrNotRectangular)
	})

	t.Run("BadTileBeforeRaggedRow", func(t *testing.T) {
		_, err := tilemap.ReadString("#.\n#\n?.\n", tile.ParseBool)
		assert.ErrorIs(t, err, tilemap.ErrTileConversion)
		assert.NotErrorIs(t, err, tilemap.ErrNotRectangular)
	})

	t.Run("Reader", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := tilemap.Read(iotest.ErrReader(boom), tile.ParseBool)
		assert.ErrorIs(t, err, tilemap.ErrRead)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := tilemap.ReadFile(filepath.Join(t.TempDir(), "nope.txt"), tile.ParseBool)
		assert.ErrorIs(t, err, tilemap.ErrRead)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("219\n398\n"), 0o600))

	m, err := tilemap.ReadFile(path, tile.ParseDigit)
	require.NoError(t, err)
	assert.Equal(t, tile.Digit(2), m.At(geom.Pt(0, 1)))
	assert.Equal(t, tile.Digit(8), m.At(geom.Pt(2, 0)))
}

//----------------------------------------------------------------------------//
// Formatting
//----------------------------------------------------------------------------//

func TestString_RoundTrip(t *testing.T) {
	for _, in := range []string{"#..\n.##\n", "#\n", "..#.\n#...\n....\n"} {
		m, err := tilemap.ReadString(in, tile.ParseBool)
		require.NoError(t, err)
		assert.Equal(t, in, m.String())
	}

	wide := " 01 02\n 03 04\n"
	m, err := tilemap.ReadString(wide, tile.ParseTwoDigits)
	require.NoError(t, err)
	assert.Equal(t, wide, m.String())
}

func TestString_ProceduralTopRowFirst(t *testing.T) {
	m := tilemap.Procedural(3, 2, func(p geom.Point) tile.Digit { return tile.Digit(p.X + 3*p.Y) })
	assert.Equal(t, "345\n012\n", m.String())
}

func TestString_Empty(t *testing.T) {
	assert.Equal(t, "", tilemap.New[tile.Bool](0, 0).String())
}

func TestWriteTo(t *testing.T) {
	m := tilemap.Procedural(2, 2, func(p geom.Point) tile.Bool { return p.X == p.Y })
	var b strings.Builder
	n, err := m.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, ".#\n#.\n", b.String())
	assert.Equal(t, int64(6), n)
}

//----------------------------------------------------------------------------//
// Traversability
//----------------------------------------------------------------------------//

type door struct{ locked bool }

func (d door) ContextInto(_ geom.Point, hasKey bool) tilemap.Traversability {
	if !d.locked || hasKey {
		return tilemap.Free
	}
	return tilemap.Obstructed
}

type wall bool

func (w wall) Into() tilemap.Traversability {
	if w {
		return tilemap.Obstructed
	}
	return tilemap.Free
}

func TestTraversability_String(t *testing.T) {
	assert.Equal(t, "Obstructed", tilemap.Obstructed.String())
	assert.Equal(t, "Free", tilemap.Free.String())
	assert.Equal(t, "Halt", tilemap.Halt.String())
	assert.Equal(t, "Traversability(9)", tilemap.Traversability(9).String())
}

func TestConversions(t *testing.T) {
	viaMethod := tilemap.Method[door, tilemap.Traversability, bool]()
	assert.Equal(t, tilemap.Obstructed, viaMethod(door{locked: true}, geom.Point{}, false))
	assert.Equal(t, tilemap.Free, viaMethod(door{locked: true}, geom.Point{}, true))

	viaInto := tilemap.ContextFree[wall, tilemap.Traversability]()
	assert.Equal(t, tilemap.Obstructed, viaInto(wall(true), geom.Point{}, tilemap.Unit{}))

	lifted := tilemap.Lift(func(d tile.Digit) tilemap.Traversability {
		if d == 9 {
			return tilemap.Obstructed
		}
		return tilemap.Free
	})
	assert.Equal(t, tilemap.Free, lifted(tile.Digit(3), geom.Pt(4, 4), tilemap.Unit{}))
	assert.Equal(t, tilemap.Obstructed, lifted(tile.Digit(9), geom.Pt(4, 4), tilemap.Unit{}))
}

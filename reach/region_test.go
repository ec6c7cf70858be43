package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/reach"
	"github.com/katalvlaran/gridkit/tile"
	"github.com/katalvlaran/gridkit/tilemap"
)

func TestRegion(t *testing.T) {
	m, err := tilemap.ReadString(""+
		"..#..\n"+
		"..#..\n"+
		"###..\n", tile.ParseBool)
	require.NoError(t, err)

	left, err := reach.Region(m, walls, tilemap.Unit{}, geom.Pt(0, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, left.Size())
	assert.True(t, left.Has(geom.Pt(1, 1)))
	assert.False(t, left.Has(geom.Pt(3, 1)))

	right, err := reach.Region(m, walls, tilemap.Unit{}, geom.Pt(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, right.Size())

	_, err = reach.Region(m, walls, tilemap.Unit{}, geom.Pt(9, 9))
	assert.ErrorIs(t, err, reach.ErrStartOutOfBounds)
}

func TestComponents(t *testing.T) {
	m, err := tilemap.ReadString(""+
		".#.\n"+
		".#.\n"+
		".#.\n", tile.ParseBool)
	require.NoError(t, err)
	m.Translate(-1, -1)

	labels, sizes, err := reach.Components(m, walls, tilemap.Unit{})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, sizes)
	assert.Equal(t, m.Offset(), labels.Offset())

	get := func(x, y int32) int {
		v, ok := labels.Get(geom.Pt(x, y))
		require.True(t, ok)
		return v
	}
	assert.Equal(t, 0, get(-1, -1))
	assert.Equal(t, 0, get(-1, 1))
	assert.Equal(t, reach.Unlabelled, get(0, 0))
	assert.Equal(t, 1, get(1, -1))
	assert.Equal(t, 1, get(1, 1))
}

func TestComponents_HaltClaimedOnce(t *testing.T) {
	// F H F: the Halt tile joins the first component and blocks the second
	// walk from passing through it.
	m := tilemap.FromRows([][]tilemap.Traversability{{tilemap.Free, tilemap.Halt, tilemap.Free}})
	labels, sizes, err := reach.Components(m, self, tilemap.Unit{})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, sizes)
	assert.Equal(t, 0, labels.At(geom.Pt(1, 0)))
	assert.Equal(t, 1, labels.At(geom.Pt(2, 0)))
}

func TestComponents_Basins(t *testing.T) {
	m, err := tilemap.ReadString(heightmap, tile.ParseDigit)
	require.NoError(t, err)

	_, sizes, err := reach.Components(m, lowland, tilemap.Unit{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{3, 9, 14, 9}, sizes)
}

func TestComponents_NilMap(t *testing.T) {
	_, _, err := reach.Components[tile.Bool](nil, walls, tilemap.Unit{})
	assert.ErrorIs(t, err, reach.ErrNilMap)
}

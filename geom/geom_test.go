package geom_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
)

func TestPoint_Arithmetic(t *testing.T) {
	a, b := geom.Pt(3, -2), geom.Pt(-1, 5)
	assert.Equal(t, geom.Pt(2, 3), a.Add(b))
	assert.Equal(t, geom.Pt(4, -7), a.Sub(b))
	assert.Equal(t, int32(5), a.Manhattan())
	assert.Equal(t, int32(11), a.Sub(b).Manhattan())
	assert.Equal(t, geom.Pt(3, 2), a.Abs())
	assert.Equal(t, "(3,-2)", a.String())
}

func TestPoint_Rotation(t *testing.T) {
	p := geom.Pt(2, 1)
	assert.Equal(t, geom.Pt(-1, 2), p.RotateLeft())
	assert.Equal(t, geom.Pt(1, -2), p.RotateRight())
	assert.Equal(t, p, p.RotateLeft().RotateRight())
	assert.Equal(t, p, p.RotateLeft().RotateLeft().RotateLeft().RotateLeft())
}

// TestPoint_Compare checks the Y-then-X total order.
func TestPoint_Compare(t *testing.T) {
	pts := []geom.Point{geom.Pt(1, 1), geom.Pt(0, 2), geom.Pt(5, 0), geom.Pt(0, 1)}
	slices.SortFunc(pts, geom.Point.Compare)
	assert.Equal(t, []geom.Point{geom.Pt(5, 0), geom.Pt(0, 1), geom.Pt(1, 1), geom.Pt(0, 2)}, pts)

	assert.Equal(t, 0, geom.Pt(4, 4).Compare(geom.Pt(4, 4)))
	assert.True(t, geom.Pt(9, 0).Less(geom.Pt(0, 1)))
	assert.False(t, geom.Pt(0, 1).Less(geom.Pt(0, 1)))
}

func TestDirection_Deltas(t *testing.T) {
	cases := []struct {
		d      geom.Direction
		dx, dy int32
	}{
		{geom.Up, 0, 1},
		{geom.Down, 0, -1},
		{geom.Left, -1, 0},
		{geom.Right, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			dx, dy := tc.d.Deltas()
			assert.Equal(t, tc.dx, dx)
			assert.Equal(t, tc.dy, dy)

			back, ok := geom.FromDelta(tc.d.Delta())
			require.True(t, ok)
			assert.Equal(t, tc.d, back)
		})
	}

	_, ok := geom.FromDelta(geom.Pt(1, 1))
	assert.False(t, ok)
}

// TestDirection_Group verifies turns and reversal form the cyclic group of order 4.
func TestDirection_Group(t *testing.T) {
	for d := range geom.Orthogonal() {
		assert.Equal(t, d, d.TurnRight().TurnLeft())
		assert.Equal(t, d, d.TurnLeft().TurnRight())
		assert.Equal(t, d, d.Reverse().Reverse())
		assert.Equal(t, d.Reverse(), d.TurnRight().TurnRight())
		assert.Equal(t, d, d.TurnRight().TurnRight().TurnRight().TurnRight())
		assert.Equal(t, geom.Point{}, d.Delta().Add(d.Reverse().Delta()))
	}
	assert.Equal(t, geom.Right, geom.Up.TurnRight())
	assert.Equal(t, geom.Left, geom.Up.TurnLeft())
}

func TestDirection_Enumeration(t *testing.T) {
	assert.Equal(t, []geom.Direction{geom.Up, geom.Down, geom.Left, geom.Right}, slices.Collect(geom.Orthogonal()))

	var diag []geom.Point
	for v, h := range geom.Diagonals() {
		diag = append(diag, v.Delta().Add(h.Delta()))
	}
	assert.Equal(t, []geom.Point{geom.Pt(-1, 1), geom.Pt(1, 1), geom.Pt(-1, -1), geom.Pt(1, -1)}, diag)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]geom.Direction{
		"U": geom.Up, "north": geom.Up,
		"d": geom.Down, "S": geom.Down,
		"Left": geom.Left, "w": geom.Left,
		"R": geom.Right, "e": geom.Right,
	} {
		got, err := geom.ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := geom.ParseDirection("sideways")
	assert.ErrorIs(t, err, geom.ErrUnknownDirection)
	assert.Equal(t, byte('L'), geom.Left.Letter())
}

func TestReplay(t *testing.T) {
	path := []geom.Direction{geom.Right, geom.Right, geom.Up, geom.Left, geom.Down, geom.Down}
	assert.Equal(t, geom.Pt(1, -1), geom.Replay(geom.Point{}, path))
	assert.Equal(t, geom.Pt(7, 7), geom.Replay(geom.Pt(7, 7), nil))
}

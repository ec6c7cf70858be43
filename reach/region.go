package reach

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/tilemap"
)

// Region returns the set of points Walk visits from start.
func Region[Tile, C any](
	m *tilemap.Map[Tile],
	conv tilemap.Conversion[Tile, tilemap.Traversability, C],
	ctx C,
	start geom.Point,
	opts ...Option,
) (mapset.Set[geom.Point], error) {
	region := mapset.New[geom.Point]()
	_, err := Walk(m, conv, ctx, start, func(p geom.Point, _ Tile) bool {
		region.Put(p)
		return false
	}, opts...)
	if err != nil {
		return mapset.Set[geom.Point]{}, err
	}
	return region, nil
}

// Unlabelled marks tiles that belong to no component.
const Unlabelled = -1

// Components labels the connected regions of m. Tiles are scanned in
// row-major order and every non-Obstructed tile not yet claimed seeds a new
// walk, so labels are 0, 1, 2, … in order of each region's first tile.
//
// The returned map has the same shape and offset as m; Obstructed tiles
// hold Unlabelled. sizes[i] is the number of tiles labelled i.
//
// Halt tiles still end expansion, so a Halt tile can separate two regions
// while itself belonging to whichever reached it first.
func Components[Tile, C any](
	m *tilemap.Map[Tile],
	conv tilemap.Conversion[Tile, tilemap.Traversability, C],
	ctx C,
	opts ...Option,
) (labels *tilemap.Map[int], sizes []int, err error) {
	if m == nil {
		return nil, nil, ErrNilMap
	}
	buf := make([]int, m.Len())
	for i := range buf {
		buf[i] = Unlabelled
	}
	var claimable tilemap.Conversion[Tile, tilemap.Traversability, C] = func(t Tile, p geom.Point, ctx C) tilemap.Traversability {
		if buf[m.PointToIndex(p)] != Unlabelled {
			return tilemap.Obstructed
		}
		return conv(t, p, ctx)
	}

	for idx := range buf {
		p := m.IndexToPoint(idx)
		if buf[idx] != Unlabelled || conv(m.AtIndex(idx), p, ctx) == tilemap.Obstructed {
			continue
		}
		id, size := len(sizes), 0
		_, err = Walk(m, claimable, ctx, p, func(q geom.Point, _ Tile) bool {
			buf[m.PointToIndex(q)] = id
			size++
			return false
		}, opts...)
		if err != nil {
			return nil, nil, err
		}
		sizes = append(sizes, size)
	}

	labels = tilemap.ProceduralOffset(m.Offset(), m.Width(), m.Height(), func(p geom.Point) int {
		return buf[m.PointToIndex(p)]
	})
	return labels, sizes, nil
}

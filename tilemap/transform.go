package tilemap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridkit/geom"
)

// Translate moves every point of m by (dx, dy). Only the offset changes;
// the tile buffer is untouched. O(1).
//
// Using X and O for tiles and . for empty plane, Translate(2, 1) turns
//
//	XOOX
//	OXOX
//
// into
//
//	..XOOX
//	..OXOX
//	......
func (m *Map[T]) Translate(dx, dy int32) {
	m.offset = m.offset.Add(geom.Pt(dx, dy))
}

// FlipVertical returns a copy of m mirrored across its horizontal midline.
// The offset, and so every corner point, is unchanged.
func (m *Map[T]) FlipVertical() *Map[T] {
	flipped := NewOffset[T](m.offset, m.width, m.height)
	for row := 0; row < m.height; row++ {
		src := m.tiles[row*m.width : (row+1)*m.width]
		dst := (m.height - 1 - row) * m.width
		copy(flipped.tiles[dst:dst+m.width], src)
	}
	return flipped
}

// FlipHorizontal returns a copy of m mirrored across its vertical midline.
// The offset, and so every corner point, is unchanged.
func (m *Map[T]) FlipHorizontal() *Map[T] {
	flipped := NewOffset[T](m.offset, m.width, m.height)
	for row := 0; row < m.height; row++ {
		base := row * m.width
		for col := 0; col < m.width; col++ {
			flipped.tiles[base+m.width-1-col] = m.tiles[base+col]
		}
	}
	return flipped
}

// RotateLeft returns a copy of m rotated a quarter turn counter-clockwise.
// Width and height swap and the result stays in the positive quadrant.
//
// Panics unless the offset is the origin; Translate before and after to
// rotate a map placed elsewhere.
func (m *Map[T]) RotateLeft() *Map[T] {
	m.mustBeAtOrigin()
	rotated := New[T](m.height, m.width)
	origin := rotated.BottomRight()
	for idx, t := range m.tiles {
		p := m.IndexToPoint(idx).RotateLeft().Add(origin)
		rotated.tiles[rotated.PointToIndex(p)] = t
	}
	return rotated
}

// RotateRight returns a copy of m rotated a quarter turn clockwise.
// Same preconditions as RotateLeft.
func (m *Map[T]) RotateRight() *Map[T] {
	m.mustBeAtOrigin()
	rotated := New[T](m.height, m.width)
	origin := rotated.TopLeft()
	for idx, t := range m.tiles {
		p := m.IndexToPoint(idx).RotateRight().Add(origin)
		rotated.tiles[rotated.PointToIndex(p)] = t
	}
	return rotated
}

func (m *Map[T]) mustBeAtOrigin() {
	if m.offset != (geom.Point{}) {
		panic(fmt.Sprintf("tilemap: rotation is only legal when offset is (0,0), got %v", m.offset))
	}
}

// ExtractInterestingRegion returns the smallest sub-map, keeping original
// coordinates, that contains every tile for which interesting returns true.
// If no tile is interesting the result is an empty map at the origin.
func (m *Map[T]) ExtractInterestingRegion(interesting func(p geom.Point, t T) bool) *Map[T] {
	lo := geom.Pt(math.MaxInt32, math.MaxInt32)
	hi := geom.Pt(math.MinInt32, math.MinInt32)
	found := false
	for p, t := range m.All() {
		if !interesting(p, t) {
			continue
		}
		found = true
		lo = geom.Pt(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = geom.Pt(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	if !found {
		return &Map[T]{}
	}
	width := int(hi.X-lo.X) + 1
	height := int(hi.Y-lo.Y) + 1
	return ProceduralOffset(lo, width, height, func(p geom.Point) T {
		return m.tiles[m.PointToIndex(p)]
	})
}

// Convert builds a map of a new tile type by applying fn to every tile.
// Dimensions and offset are preserved.
func Convert[T, U any](m *Map[T], fn func(T) U) *Map[U] {
	tiles := make([]U, len(m.tiles))
	for i, t := range m.tiles {
		tiles[i] = fn(t)
	}
	return &Map[U]{tiles: tiles, width: m.width, height: m.height, offset: m.offset}
}

package tilemap

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/gridkit/geom"
)

// Map is a rectangular grid of tiles whose lower-left cell sits at Offset.
//
// The zero value is an empty 0×0 map at the origin. Maps are normally held
// by pointer; transforms return new maps and never alias the source.
type Map[T any] struct {
	tiles  []T
	width  int
	height int
	offset geom.Point
}

// New returns a width×height map of zero-valued tiles with its lower-left
// corner at the origin.
func New[T any](width, height int) *Map[T] {
	return NewOffset[T](geom.Point{}, width, height)
}

// NewOffset returns a width×height map of zero-valued tiles with its
// lower-left corner at offset.
func NewOffset[T any](offset geom.Point, width, height int) *Map[T] {
	checkDims(width, height)
	return &Map[T]{
		tiles:  make([]T, width*height),
		width:  width,
		height: height,
		offset: offset,
	}
}

// Procedural builds a width×height map at the origin by calling f once per
// cell, in row-major order.
func Procedural[T any](width, height int, f func(p geom.Point) T) *Map[T] {
	return ProceduralOffset(geom.Point{}, width, height, f)
}

// ProceduralOffset builds a width×height map whose lower-left corner is
// offset. f receives final (offset) coordinates, once per cell, in
// row-major order.
func ProceduralOffset[T any](offset geom.Point, width, height int, f func(p geom.Point) T) *Map[T] {
	checkDims(width, height)
	m := &Map[T]{
		tiles:  make([]T, 0, width*height),
		width:  width,
		height: height,
		offset: offset,
	}
	for idx := 0; idx < width*height; idx++ {
		m.tiles = append(m.tiles, f(m.IndexToPoint(idx)))
	}
	return m
}

// FromRows builds a map at the origin from rows ordered bottom-up:
// rows[0][0] is the lower-left tile. Tiles are copied.
// Panics if the rows are not all the same length.
func FromRows[T any](rows [][]T) *Map[T] {
	if len(rows) == 0 {
		return &Map[T]{}
	}
	width := len(rows[0])
	tiles := make([]T, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			panic(fmt.Sprintf("tilemap: row %d has %d tiles, want %d: input must be rectangular", y, len(row), width))
		}
		tiles = append(tiles, row...)
	}
	return &Map[T]{tiles: tiles, width: width, height: len(rows)}
}

func checkDims(width, height int) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("tilemap: negative dimensions %d×%d", width, height))
	}
}

// Width is the number of columns.
func (m *Map[T]) Width() int { return m.width }

// Height is the number of rows.
func (m *Map[T]) Height() int { return m.height }

// Len is the number of tiles, Width×Height.
func (m *Map[T]) Len() int { return len(m.tiles) }

// Offset is the position of the lower-left tile.
func (m *Map[T]) Offset() geom.Point { return m.offset }

// LowX is the smallest in-bounds x.
func (m *Map[T]) LowX() int32 { return m.offset.X }

// HighX is the largest in-bounds x (inclusive).
func (m *Map[T]) HighX() int32 { return m.offset.X + int32(m.width) - 1 }

// LowY is the smallest in-bounds y.
func (m *Map[T]) LowY() int32 { return m.offset.Y }

// HighY is the largest in-bounds y (inclusive).
func (m *Map[T]) HighY() int32 { return m.offset.Y + int32(m.height) - 1 }

// BottomLeft is the lower-left in-bounds point.
func (m *Map[T]) BottomLeft() geom.Point { return geom.Pt(m.LowX(), m.LowY()) }

// TopLeft is the upper-left in-bounds point.
func (m *Map[T]) TopLeft() geom.Point { return geom.Pt(m.LowX(), m.HighY()) }

// BottomRight is the lower-right in-bounds point.
func (m *Map[T]) BottomRight() geom.Point { return geom.Pt(m.HighX(), m.LowY()) }

// TopRight is the upper-right in-bounds point.
func (m *Map[T]) TopRight() geom.Point { return geom.Pt(m.HighX(), m.HighY()) }

// InBounds reports whether p addresses a tile of m.
func (m *Map[T]) InBounds(p geom.Point) bool {
	return p.X >= m.LowX() && p.Y >= m.LowY() && p.X <= m.HighX() && p.Y <= m.HighY()
}

// PointToIndex translates an in-bounds point into its index in the
// row-major tile buffer. The result is meaningless for out-of-bounds points.
func (m *Map[T]) PointToIndex(p geom.Point) int {
	return int(p.X-m.offset.X) + int(p.Y-m.offset.Y)*m.width
}

// IndexToPoint is the inverse of PointToIndex for 0 <= idx < Len().
func (m *Map[T]) IndexToPoint(idx int) geom.Point {
	return geom.Pt(int32(idx%m.width), int32(idx/m.width)).Add(m.offset)
}

// AtIndex returns the tile stored at buffer index idx.
func (m *Map[T]) AtIndex(idx int) T { return m.tiles[idx] }

// At returns the tile at p.
// Panics if p has a negative component or lies outside the map.
func (m *Map[T]) At(p geom.Point) T {
	return m.tiles[m.mustIndex(p)]
}

// Ptr returns a pointer to the tile at p, for in-place updates.
// Panics under the same conditions as At.
func (m *Map[T]) Ptr(p geom.Point) *T {
	return &m.tiles[m.mustIndex(p)]
}

// Set stores v at p. Panics under the same conditions as At.
func (m *Map[T]) Set(p geom.Point, v T) {
	m.tiles[m.mustIndex(p)] = v
}

// Get returns the tile at p and true, or the zero tile and false when p is
// out of bounds. It never panics.
func (m *Map[T]) Get(p geom.Point) (T, bool) {
	if !m.InBounds(p) {
		var zero T
		return zero, false
	}
	return m.tiles[m.PointToIndex(p)], true
}

// AtXY returns the tile at (x, y). Panics if (x, y) lies outside the map.
func (m *Map[T]) AtXY(x, y int) T {
	return m.tiles[m.mustIndexXY(x, y)]
}

// SetXY stores v at (x, y). Panics if (x, y) lies outside the map.
func (m *Map[T]) SetXY(x, y int, v T) {
	m.tiles[m.mustIndexXY(x, y)] = v
}

func (m *Map[T]) mustIndex(p geom.Point) int {
	if p.X < 0 || p.Y < 0 {
		panic(fmt.Sprintf("tilemap: point %v must be in the positive quadrant", p))
	}
	return m.mustIndexXY(int(p.X), int(p.Y))
}

func (m *Map[T]) mustIndexXY(x, y int) int {
	p := geom.Pt(int32(x), int32(y))
	if !m.InBounds(p) {
		panic(fmt.Sprintf("tilemap: point %v outside %d×%d map at %v", p, m.width, m.height, m.offset))
	}
	return m.PointToIndex(p)
}

// All iterates (position, tile) pairs in row-major order.
func (m *Map[T]) All() iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for idx, t := range m.tiles {
			if !yield(m.IndexToPoint(idx), t) {
				return
			}
		}
	}
}

// AllPtr iterates (position, *tile) pairs in row-major order; writes
// through the pointer update the map.
func (m *Map[T]) AllPtr() iter.Seq2[geom.Point, *T] {
	return func(yield func(geom.Point, *T) bool) {
		for idx := range m.tiles {
			if !yield(m.IndexToPoint(idx), &m.tiles[idx]) {
				return
			}
		}
	}
}

// Points iterates every in-bounds position in row-major order.
func (m *Map[T]) Points() iter.Seq[geom.Point] {
	offset, width, n := m.offset, m.width, len(m.tiles)
	return func(yield func(geom.Point) bool) {
		for idx := 0; idx < n; idx++ {
			if !yield(geom.Pt(int32(idx%width), int32(idx/width)).Add(offset)) {
				return
			}
		}
	}
}

// Tiles iterates the tiles in row-major order.
func (m *Map[T]) Tiles() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range m.tiles {
			if !yield(t) {
				return
			}
		}
	}
}

// Clone returns an independent copy of m.
func (m *Map[T]) Clone() *Map[T] {
	tiles := make([]T, len(m.tiles))
	copy(tiles, m.tiles)
	return &Map[T]{tiles: tiles, width: m.width, height: m.height, offset: m.offset}
}

// Equal reports whether a and b have the same dimensions, offset and tiles.
func Equal[T comparable](a, b *Map[T]) bool {
	if a.width != b.width || a.height != b.height || a.offset != b.offset {
		return false
	}
	for i := range a.tiles {
		if a.tiles[i] != b.tiles[i] {
			return false
		}
	}
	return true
}

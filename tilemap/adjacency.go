package tilemap

import (
	"iter"

	"github.com/katalvlaran/gridkit/geom"
)

// OrthogonalAdjacencies iterates the in-bounds neighbours of p reached by
// one step Up, Down, Left or Right, in that order. At most 4 points.
func (m *Map[T]) OrthogonalAdjacencies(p geom.Point) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for d := range geom.Orthogonal() {
			q := p.Step(d)
			if m.InBounds(q) && !yield(q) {
				return
			}
		}
	}
}

// Adjacencies iterates the in-bounds neighbours of p including diagonals:
// the orthogonal neighbours first, then Up-Left, Up-Right, Down-Left,
// Down-Right. At most 8 points.
func (m *Map[T]) Adjacencies(p geom.Point) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for q := range m.OrthogonalAdjacencies(p) {
			if !yield(q) {
				return
			}
		}
		for v, h := range geom.Diagonals() {
			q := p.Step(v).Step(h)
			if m.InBounds(q) && !yield(q) {
				return
			}
		}
	}
}

// Project iterates the ray origin, origin+(dx,dy), origin+2(dx,dy), …
// stopping before the first point outside the map. The origin itself is
// always yielded. A zero step yields the origin once.
func (m *Map[T]) Project(origin geom.Point, dx, dy int32) iter.Seq[geom.Point] {
	step := geom.Pt(dx, dy)
	return func(yield func(geom.Point) bool) {
		if !yield(origin) || step == (geom.Point{}) {
			return
		}
		for p := origin.Add(step); m.InBounds(p); p = p.Add(step) {
			if !yield(p) {
				return
			}
		}
	}
}

package tilemap

import (
	"iter"

	"github.com/katalvlaran/gridkit/geom"
)

// Edge walks the boundary points of one side of a map.
//
// Left and Right edges run bottom-to-top; Up and Down edges run
// left-to-right. Points may be taken from the front with Next and from the
// back with NextBack; the two ends meet in the middle without repeating or
// skipping a point. Reset restores the full edge.
type Edge struct {
	first, last geom.Point
	from, to    geom.Point
	step        geom.Direction
	empty       bool
	done        bool
}

// Edge returns the walker for the side of m named by side.
func (m *Map[T]) Edge(side geom.Direction) *Edge {
	var from, to geom.Point
	var step geom.Direction
	switch side {
	case geom.Left:
		from, to, step = m.BottomLeft(), m.TopLeft(), geom.Up
	case geom.Right:
		from, to, step = m.BottomRight(), m.TopRight(), geom.Up
	case geom.Down:
		from, to, step = m.BottomLeft(), m.BottomRight(), geom.Right
	default:
		from, to, step = m.TopLeft(), m.TopRight(), geom.Right
	}
	e := &Edge{first: from, last: to, step: step, empty: m.Len() == 0}
	e.Reset()
	return e
}

// Reset restarts the walk from both ends.
func (e *Edge) Reset() {
	e.from, e.to, e.done = e.first, e.last, e.empty
}

// Next returns the next point from the front.
func (e *Edge) Next() (geom.Point, bool) {
	if e.done {
		return geom.Point{}, false
	}
	next := e.from
	e.from = e.from.Step(e.step)
	e.done = next == e.to
	return next, true
}

// NextBack returns the next point from the back.
func (e *Edge) NextBack() (geom.Point, bool) {
	if e.done {
		return geom.Point{}, false
	}
	next := e.to
	e.to = e.to.Step(e.step.Reverse())
	e.done = next == e.from
	return next, true
}

// Len is the number of points not yet taken from either end.
func (e *Edge) Len() int {
	if e.done {
		return 0
	}
	return int(e.to.Sub(e.from).Manhattan()) + 1
}

// All consumes the remaining points front to back.
func (e *Edge) All() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for p, ok := e.Next(); ok; p, ok = e.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Backward consumes the remaining points back to front.
func (e *Edge) Backward() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for p, ok := e.NextBack(); ok; p, ok = e.NextBack() {
			if !yield(p) {
				return
			}
		}
	}
}

package astar

import (
	"math"
	"slices"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/tilemap"
)

const unreached = math.MaxInt32

// node is one open-set entry; g is the cost it was pushed with, used to
// recognise stale entries.
type node struct {
	p geom.Point
	g int32
	f int32
}

func less(a, b node) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.p.Less(b.p)
}

// link records how a point was reached.
type link struct {
	from geom.Point
	dir  geom.Direction
}

// runner holds the mutable state of one search.
type runner[Tile, C any] struct {
	m        *tilemap.Map[Tile]
	conv     tilemap.Conversion[Tile, tilemap.Traversability, C]
	ctx      C
	goal     geom.Point
	opts     Options
	open     *heap.Heap[node]
	g        []int32
	cameFrom []link
	expanded int
}

// Navigate returns the shortest sequence of orthogonal steps leading from
// from to to, and true; or nil and false when to cannot be reached.
//
// Each neighbour is classified with conv(tile, pos, ctx). Obstructed tiles
// are never entered; Free and Halt tiles cost one step each. The tile at
// from is not classified. from == to yields an empty path and true.
// Endpoints outside the map are unreachable.
func Navigate[Tile, C any](
	m *tilemap.Map[Tile],
	conv tilemap.Conversion[Tile, tilemap.Traversability, C],
	ctx C,
	from, to geom.Point,
	opts ...Option,
) ([]geom.Direction, bool) {
	if m == nil || !m.InBounds(from) || !m.InBounds(to) {
		return nil, false
	}
	if from == to {
		return []geom.Direction{}, true
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner[Tile, C]{
		m:        m,
		conv:     conv,
		ctx:      ctx,
		goal:     to,
		opts:     o,
		open:     heap.New(less),
		g:        make([]int32, m.Len()),
		cameFrom: make([]link, m.Len()),
	}
	for i := range r.g {
		r.g[i] = unreached
	}
	r.g[m.PointToIndex(from)] = 0
	r.open.Push(node{p: from, g: 0, f: r.h(from)})

	found := r.process()
	if o.Logger != nil {
		o.Logger.Debug("astar: search finished", "from", from, "to", to,
			"found", found, "expanded", r.expanded)
	}
	if !found {
		return nil, false
	}
	return r.path(from), true
}

// NavigateFree is Navigate for conversions that need no context.
func NavigateFree[Tile any](
	m *tilemap.Map[Tile],
	conv tilemap.Conversion[Tile, tilemap.Traversability, tilemap.Unit],
	from, to geom.Point,
	opts ...Option,
) ([]geom.Direction, bool) {
	return Navigate(m, conv, tilemap.Unit{}, from, to, opts...)
}

func (r *runner[Tile, C]) h(p geom.Point) int32 {
	return r.goal.Sub(p).Manhattan()
}

// process pops nodes until the goal is reached, the open set drains or the
// expansion budget runs out.
func (r *runner[Tile, C]) process() bool {
	for r.open.Size() > 0 {
		cur, _ := r.open.Pop()
		if cur.g > r.g[r.m.PointToIndex(cur.p)] {
			continue // stale
		}
		if cur.p == r.goal {
			return true
		}
		if r.opts.MaxExpansions > 0 && r.expanded == r.opts.MaxExpansions {
			return false
		}
		r.expanded++
		r.relax(cur)
	}
	return false
}

func (r *runner[Tile, C]) relax(cur node) {
	for d := range geom.Orthogonal() {
		next := cur.p.Step(d)
		if !r.m.InBounds(next) {
			continue
		}
		idx := r.m.PointToIndex(next)
		if r.conv(r.m.AtIndex(idx), next, r.ctx) == tilemap.Obstructed {
			continue
		}
		g := cur.g + 1
		if g >= r.g[idx] {
			continue
		}
		r.g[idx] = g
		r.cameFrom[idx] = link{from: cur.p, dir: d}
		r.open.Push(node{p: next, g: g, f: g + r.h(next)})
	}
}

// path follows predecessors from the goal back to start.
func (r *runner[Tile, C]) path(start geom.Point) []geom.Direction {
	steps := make([]geom.Direction, 0, r.g[r.m.PointToIndex(r.goal)])
	for p := r.goal; p != start; {
		l := r.cameFrom[r.m.PointToIndex(p)]
		steps = append(steps, l.dir)
		p = l.from
	}
	slices.Reverse(steps)
	return steps
}

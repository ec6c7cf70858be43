package reach

import (
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/tilemap"
)

// Visitor receives each reachable tile. Returning true stops the walk.
type Visitor[Tile any] func(p geom.Point, t Tile) bool

// walker holds the mutable state of one walk.
type walker[Tile, C any] struct {
	m       *tilemap.Map[Tile]
	conv    tilemap.Conversion[Tile, tilemap.Traversability, C]
	ctx     C
	visit   Visitor[Tile]
	opts    WalkOptions
	queue   *queue.Queue[geom.Point]
	visited []bool
	res     *Result
}

// Walk floods m from start in breadth-first order. Each dequeued tile is
// classified with conv(tile, pos, ctx): Obstructed tiles are skipped,
// every other tile is passed to visit, and only Free tiles have their
// in-bounds unvisited orthogonal neighbours queued.
//
// The walk ends when the queue drains, when visit returns true
// (Result.Stopped), or when the MaxSteps budget is spent (Result.Truncated).
// ctx is only borrowed for the duration of the call.
func Walk[Tile, C any](
	m *tilemap.Map[Tile],
	conv tilemap.Conversion[Tile, tilemap.Traversability, C],
	ctx C,
	start geom.Point,
	visit Visitor[Tile],
	opts ...Option,
) (*Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.InBounds(start) {
		return nil, ErrStartOutOfBounds
	}

	w := &walker[Tile, C]{
		m:       m,
		conv:    conv,
		ctx:     ctx,
		visit:   visit,
		opts:    o,
		queue:   queue.New[geom.Point](),
		visited: make([]bool, m.Len()),
		res:     &Result{},
	}
	w.enqueue(start)
	w.loop()

	if o.Logger != nil {
		o.Logger.Debug("reach: walk finished", "start", start,
			"visited", w.res.Visited, "stopped", w.res.Stopped, "truncated", w.res.Truncated)
	}
	return w.res, nil
}

// WalkFree is Walk for conversions that need no context.
func WalkFree[Tile any](
	m *tilemap.Map[Tile],
	conv tilemap.Conversion[Tile, tilemap.Traversability, tilemap.Unit],
	start geom.Point,
	visit Visitor[Tile],
	opts ...Option,
) (*Result, error) {
	return Walk(m, conv, tilemap.Unit{}, start, visit, opts...)
}

func (w *walker[Tile, C]) enqueue(p geom.Point) {
	w.opts.OnEnqueue(p)
	w.queue.Enqueue(p)
}

func (w *walker[Tile, C]) loop() {
	steps := 0
	for !w.queue.Empty() {
		if w.opts.MaxSteps > 0 && steps == w.opts.MaxSteps {
			w.res.Truncated = true
			return
		}
		steps++

		p := w.queue.Dequeue()
		w.opts.OnDequeue(p)

		idx := w.m.PointToIndex(p)
		if w.visited[idx] {
			continue
		}
		w.visited[idx] = true

		t := w.m.AtIndex(idx)
		kind := w.conv(t, p, w.ctx)
		if kind == tilemap.Obstructed {
			continue
		}
		w.res.Visited++
		if w.visit(p, t) {
			w.res.Stopped = true
			return
		}
		if kind != tilemap.Free {
			continue
		}
		for q := range w.m.OrthogonalAdjacencies(p) {
			if !w.visited[w.m.PointToIndex(q)] {
				w.enqueue(q)
			}
		}
	}
}

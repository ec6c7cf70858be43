// Package reach provides breadth-first flood fill over a tilemap.Map,
// classifying each tile through a caller-supplied conversion.
//
// What
//
//   - Walk visits every tile reachable from a start point by orthogonal steps,
//     in breadth-first order, calling a visitor for each. The visitor stops
//     the walk by returning true.
//   - Tiles are classified per query by a tilemap.Conversion into
//     Traversability:
//   - Obstructed: never visited, never expanded.
//   - Free:       visited and expanded.
//   - Halt:       visited but not expanded.
//   - Region collects the reachable set into a mapset.Set.
//   - Components labels every connected region of non-Obstructed tiles.
//
// Determinism
//
//	Neighbours are enqueued in geom.Orthogonal order (Up, Down, Left, Right),
//	so the visit sequence is fully reproducible for a given map and context.
//
// Duplicates
//
//	A point may be queued several times through different predecessors.
//	Visited marks are set at dequeue, so each tile is still visited at most
//	once; the queue may briefly hold duplicates in fan-in shapes.
//
// Complexity (N = Width×Height)
//
//   - Time:   O(N)   (each tile visited once, ≤4 enqueues per expansion)
//   - Memory: O(N)   (visited bitset sized to the tile buffer, plus the queue)
//
// Errors
//
//   - ErrNilMap            the map pointer is nil.
//   - ErrStartOutOfBounds  the start point lies outside the map.
//   - ErrOptionViolation   an Option was given an invalid value.
//
// Usage
//
//	res, err := reach.WalkFree(m, lowland, start, func(p geom.Point, d tile.Digit) bool {
//		size++
//		return false
//	})
package reach

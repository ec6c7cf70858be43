// Package astar finds shortest orthogonal paths across a tilemap.Map.
//
// Navigate runs A* with unit step cost and the Manhattan distance as
// heuristic. On a 4-connected grid the heuristic is admissible and
// consistent, so the first time the goal leaves the open set its path is
// optimal.
//
// Passability comes from a tilemap.Conversion evaluated per neighbour:
// Obstructed tiles are skipped, Free and Halt tiles are both entered and
// relaxed. Unlike reach, a Halt tile is not a dead end here; it only
// limits flood fill.
//
// Determinism:
//
//	The open set is a min-heap ordered by f = g + h, ties broken by
//	geom.Point.Compare, and neighbours are relaxed in geom.Orthogonal order.
//	Equal inputs always yield the same path.
//
// Implementation:
//
//   - Lazy decrease-key: an improved neighbour is pushed again and stale
//     heap entries are dropped when popped.
//   - g-scores and predecessors live in slices indexed like the tile buffer.
//   - The path is rebuilt from the goal by following predecessors, then
//     reversed.
//
// Complexity (N = Width×Height):
//
//   - Time:  O(N log N)
//   - Space: O(N)
//
// An unreachable goal is a normal outcome reported as ok == false, not an
// error. Invalid options panic.
package astar

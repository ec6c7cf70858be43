// Package geom provides the integer plane used by every grid in gridkit.
//
// What:
//
//   - Point: an immutable {X, Y} int32 vector with componentwise arithmetic,
//     Manhattan distance, quarter-turn rotation and a total order.
//   - Direction: the four orthogonal directions with turn and reverse
//     operations, unit deltas and the inverse delta → direction mapping.
//
// Coordinate system:
//
//	The origin is the lower-left corner; +x points Right and +y points Up.
//	This matches how puzzle inputs are drawn once their lines are reversed.
//
//	    y
//	    ▲
//	    │  Up (0,1)
//	    │
//	    └────────▶ x
//	         Right (1,0)
//
// Ordering:
//
//	Point.Compare orders by Y first, then X. Search algorithms rely on this
//	order for deterministic tie-breaking.
//
// Complexity: every operation is O(1) and allocation free.
package geom

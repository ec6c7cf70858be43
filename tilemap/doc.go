// Package tilemap provides Map, a dense rectangular grid of tiles placed
// somewhere in the integer plane, together with the primitives that search
// algorithms and puzzle solvers build on.
//
// What:
//
//   - Storage: tiles live in one row-major slice; a Point is translated to
//     a slice index through the map's offset (its lower-left corner).
//   - Construction: New / NewOffset (zero tiles), Procedural /
//     ProceduralOffset (a position → tile function), FromRows, and Read /
//     ReadString / ReadFile for line-oriented text.
//   - Queries: At, Get, Set, Ptr, AtXY, SetXY, InBounds, All, AllPtr,
//     Points, Tiles.
//   - Adjacency: OrthogonalAdjacencies (≤4), Adjacencies (≤8), Edge (a
//     double-ended edge walker) and Project (a ray clipped to the map).
//   - Transforms: Translate (O(1)), FlipVertical, FlipHorizontal,
//     RotateLeft, RotateRight, ExtractInterestingRegion, Convert.
//   - Traversability: the Obstructed / Free / Halt classification used by
//     the reach and astar packages, obtained through a Conversion that may
//     consult a caller-supplied context.
//
// Coordinates:
//
//	+y points up. When a map is read from text the last input line becomes
//	row 0, so the picture is preserved:
//
//	    input line 0  →  y = height-1
//	    ...
//	    input line n  →  y = 0
//
//	Width and height must be small enough that every coordinate fits in an
//	int32; larger maps are undefined behaviour.
//
// Errors:
//
//   - ErrTileConversion: a chunk of input failed to parse (*TileError carries
//     the raw text and the cause).
//   - ErrNotRectangular: input rows have differing tile counts.
//   - ErrRead: the underlying reader failed.
//
// Contract violations panic rather than return errors: indexing by a
// Point with a negative component, indexing outside the map, rotating a map
// whose offset is not the origin, and building from ragged rows.
//
// Concurrency:
//
//	A Map has no internal mutability. Concurrent reads are safe; any write
//	requires exclusive access.
//
// Complexity:
//
//   - Indexing, Translate: O(1).
//   - Construction, flips, rotations, Read, String: O(W×H).
package tilemap

// Package hex provides axial coordinates on a hexagonal grid whose rows run
// horizontally (pointy-top hexes), and the six directions between
// neighbouring cells.
//
// A Coordinate is the pair (Q, R); the implied third cube coordinate is
// S = -Q-R. Moving along a direction changes at most two of the three.
//
// Directions parse from the concatenated compass tokens used by puzzle
// input, e.g. "esenee" → East, Southeast, Northeast, East.
package hex

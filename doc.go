// Package gridkit is a toolkit for puzzles played on rectangular tile
// maps: parse a map from text, transform it, flood fill it and find paths
// across it.
//
// What is in the box?
//
//	• Geometry: signed points, the four orthogonal directions, rotations
//	• Tiles: typed cells parsed from fixed-width text chunks
//	• Maps: offset-aware rectangular grids with flips, rotations and
//	  edge walks
//	• Reachability: breadth-first flood fill and connected components
//	• Shortest paths: A* with a Manhattan heuristic
//	• Hex grids: axial coordinates and direction strings
//	• Puzzle inputs: line and record readers, a config file and a
//	  throttled downloader
//
// Packages:
//
//	geom/     Point and Direction
//	tile/     Tile interface, Bool, Digit, TwoDigits parsers
//	tilemap/  Map[T], Read/Write, transforms, adjacency, Traversability
//	reach/    Walk, Region, Components
//	astar/    Navigate
//	hex/      Coordinate and Direction on a hexagonal grid
//	input/    Lines, Records and friends
//	config/   the gridkit TOML configuration file
//	website/  input download with retries and a 15 minute throttle
//
// Quick ASCII example:
//
//	..#    row y=2
//	.##    row y=1
//	...    row y=0
//
// The last line of the text is y=0 and y grows upwards, so Up is +Y.
//
// The gridkit command (cmd/gridkit) puts it all behind a CLI:
//
//	go install github.com/katalvlaran/gridkit/cmd/gridkit@latest
package gridkit

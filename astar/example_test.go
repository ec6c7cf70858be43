package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/astar"
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/tile"
	"github.com/katalvlaran/gridkit/tilemap"
)

// ExampleNavigateFree finds the way round a wall.
func ExampleNavigateFree() {
	m, _ := tilemap.ReadString(""+
		"...\n"+
		"##.\n"+
		"...\n", tile.ParseBool)
	wall := tilemap.Lift(func(b tile.Bool) tilemap.Traversability {
		if b {
			return tilemap.Obstructed
		}
		return tilemap.Free
	})

	path, ok := astar.NavigateFree(m, wall, geom.Pt(0, 0), geom.Pt(0, 2))
	fmt.Println(ok, len(path), path)
	// Output:
	// true 6 [Right Right Up Up Left Left]
}

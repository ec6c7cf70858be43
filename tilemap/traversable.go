package tilemap

import (
	"fmt"

	"github.com/katalvlaran/gridkit/geom"
)

// Traversability says whether a search may move into a tile.
type Traversability uint8

const (
	// Obstructed tiles are never entered.
	Obstructed Traversability = iota
	// Free tiles are entered and moved through.
	Free
	// Halt tiles are entered but not moved past: a valid destination,
	// never a thoroughfare for flood fill.
	Halt
)

func (t Traversability) String() string {
	switch t {
	case Obstructed:
		return "Obstructed"
	case Free:
		return "Free"
	case Halt:
		return "Halt"
	}
	return fmt.Sprintf("Traversability(%d)", uint8(t))
}

// Unit is the context type of conversions which need no context.
type Unit = struct{}

// Conversion derives a value of type T from a tile, its position and a
// caller-supplied context. The context is borrowed for one query and is
// never retained by the map.
//
// Conversion[Tile, Traversability, C] is how the reach and astar packages
// learn which tiles may be entered.
type Conversion[Tile, T, C any] func(t Tile, pos geom.Point, ctx C) T

// ContextInto is implemented by tiles whose conversion to T depends on
// where they are and on a context of type C.
type ContextInto[T, C any] interface {
	ContextInto(pos geom.Point, ctx C) T
}

// Into is implemented by tiles with an unconditional conversion to T.
type Into[T any] interface {
	Into() T
}

// Method adapts the ContextInto method of Tile into a Conversion.
func Method[Tile ContextInto[T, C], T, C any]() Conversion[Tile, T, C] {
	return func(t Tile, pos geom.Point, ctx C) T {
		return t.ContextInto(pos, ctx)
	}
}

// ContextFree adapts the Into method of Tile into a Conversion that ignores
// position and context.
func ContextFree[Tile Into[T], T any]() Conversion[Tile, T, Unit] {
	return func(t Tile, _ geom.Point, _ Unit) T {
		return t.Into()
	}
}

// Lift adapts a plain tile → T function into a context-free Conversion.
func Lift[Tile, T any](fn func(Tile) T) Conversion[Tile, T, Unit] {
	return func(t Tile, _ geom.Point, _ Unit) T {
		return fn(t)
	}
}

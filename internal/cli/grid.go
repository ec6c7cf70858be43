package cli

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/gridkit/astar"
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/internal/telemetry"
	"github.com/katalvlaran/gridkit/reach"
	"github.com/katalvlaran/gridkit/tile"
	"github.com/katalvlaran/gridkit/tilemap"
)

var errUnreachable = errors.New("goal is unreachable")

// lowland treats 9 as the ridge between basins.
var lowland = tilemap.Lift(func(d tile.Digit) tilemap.Traversability {
	if d == 9 {
		return tilemap.Obstructed
	}
	return tilemap.Free
})

// walls treats # as impassable.
var walls = tilemap.Lift(func(b tile.Bool) tilemap.Traversability {
	if b {
		return tilemap.Obstructed
	}
	return tilemap.Free
})

func (a *app) basinsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "basins FILE",
		Short: "Multiply the sizes of the three largest basins of a heightmap",
		Long: `Reads a map of digits. Every tile lower than all of its orthogonal
neighbours is a low point; its basin is every tile reachable from it without
crossing a 9. Prints the product of the three largest basin sizes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, span := telemetry.Tracer("cli").Start(cmd.Context(), "basins")
			defer span.End()
			logger := loggerFromContext(ctx)

			m, err := tilemap.ReadFile(args[0], tile.ParseDigit)
			if err != nil {
				return err
			}
			prog := newProgress(logger)
			sizes, err := basinSizes(m)
			if err != nil {
				return err
			}
			prog.done("basins sized", "basins", len(sizes), "width", m.Width(), "height", m.Height())
			span.SetAttributes(attribute.Int("basins", len(sizes)))

			product := 1
			for _, s := range sizes[:min(3, len(sizes))] {
				product *= s
			}
			fmt.Fprintln(cmd.OutOrStdout(), product)
			return nil
		},
	}
}

// basinSizes returns the basin size of every low point, largest first.
func basinSizes(m *tilemap.Map[tile.Digit]) ([]int, error) {
	var sizes []int
	for p, d := range m.All() {
		if !isLowPoint(m, p, d) {
			continue
		}
		res, err := reach.WalkFree(m, lowland, p, func(geom.Point, tile.Digit) bool { return false })
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, res.Visited)
	}
	slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
	return sizes, nil
}

func isLowPoint(m *tilemap.Map[tile.Digit], p geom.Point, d tile.Digit) bool {
	for q := range m.OrthogonalAdjacencies(p) {
		if t, _ := m.Get(q); t <= d {
			return false
		}
	}
	return true
}

func (a *app) pathCommand() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "path FILE --from x,y --to x,y",
		Short: "Find the shortest path across a #/. map",
		Long: `Reads a map of # (wall) and . (open) tiles; the last line is y=0.
Prints the number of steps and the path as U/D/L/R letters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, span := telemetry.Tracer("cli").Start(cmd.Context(), "path")
			defer span.End()
			logger := loggerFromContext(ctx)

			start, err := parsePoint(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			goal, err := parsePoint(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			m, err := tilemap.ReadFile(args[0], tile.ParseBool)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			path, ok := astar.NavigateFree(m, walls, start, goal, astar.WithLogger(logger))
			prog.done("search finished", "from", start, "to", goal, "found", ok)
			if !ok {
				return fmt.Errorf("%w: %v to %v", errUnreachable, start, goal)
			}
			span.SetAttributes(attribute.Int("steps", len(path)))

			var b strings.Builder
			for _, d := range path {
				b.WriteByte(d.Letter())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d steps\n%s\n", len(path), b.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "0,0", "start point x,y")
	cmd.Flags().StringVar(&to, "to", "", "goal point x,y")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) showCommand() *cobra.Command {
	var rotate, flip, translate string
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a map after optional flip, rotation and translation",
		Long: `Reads a map of single-character tiles and prints it back. The flip is
applied first, then the rotation, then the translation; with --translate
the new bounds are printed above the map.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			m, err := tilemap.ReadFile(args[0], parseGlyph)
			if err != nil {
				return err
			}
			switch flip {
			case "":
			case "vertical", "v":
				m = m.FlipVertical()
			case "horizontal", "h":
				m = m.FlipHorizontal()
			default:
				return fmt.Errorf("--flip must be vertical or horizontal, got %q", flip)
			}
			switch rotate {
			case "":
			case "left", "l":
				m = m.RotateLeft()
			case "right", "r":
				m = m.RotateRight()
			default:
				return fmt.Errorf("--rotate must be left or right, got %q", rotate)
			}
			out := cmd.OutOrStdout()
			if translate != "" {
				dx, dy, err := parsePair(translate)
				if err != nil {
					return fmt.Errorf("--translate: %w", err)
				}
				m.Translate(dx, dy)
				fmt.Fprintf(out, "%v..%v\n", m.BottomLeft(), m.TopRight())
			}
			logger.Debug("map ready", "width", m.Width(), "height", m.Height(), "offset", m.Offset())
			_, err = m.WriteTo(out)
			return err
		},
	}
	cmd.Flags().StringVar(&rotate, "rotate", "", "rotate a quarter turn: left or right")
	cmd.Flags().StringVar(&flip, "flip", "", "mirror the map: vertical or horizontal")
	cmd.Flags().StringVar(&translate, "translate", "", "move the map by dx,dy")
	return cmd
}

package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridkit/tile"
)

// WriteTo writes m as text: rows from HighY down to LowY, tiles left to
// right, each formatted with %v and padded to its display width, one line
// per row. It implements io.WriterTo.
func (m *Map[T]) WriteTo(w io.Writer) (int64, error) {
	width := tile.WidthOf[T]()
	cw := &countingWriter{w: bufio.NewWriter(w)}
	for y := m.HighY(); y >= m.LowY(); y-- {
		base := int(y-m.offset.Y) * m.width
		for _, t := range m.tiles[base : base+m.width] {
			fmt.Fprintf(cw, "%-*v", width, t)
		}
		fmt.Fprintln(cw)
	}
	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

// String renders m as WriteTo does.
func (m *Map[T]) String() string {
	var b strings.Builder
	_, _ = m.WriteTo(&b)
	return b.String()
}

// countingWriter remembers the first error so the row loop stays flat.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

package grid

import (
	"container/list"
	"strings"
)

// MemGrid is the default in-memory Grid, with a bounded scrollback of
// rows displaced off the top by upward scrolling: a plain visible buffer
// plus a container/list scrollback of evicted lines, kept behind the
// Grid contract rather than baked into a cursor-owning screen type.
type MemGrid struct {
	rows, cols int
	buf        [][]Cell

	history    *list.List // of []Cell, oldest at Front
	maxHistory int
}

// New builds a MemGrid of the given geometry with every cell blank
// (Char == 0) and a scrollback capped at maxHistory evicted rows.
// maxHistory <= 0 disables scrollback retention.
func New(rows, cols, maxHistory int) *MemGrid {
	g := &MemGrid{
		rows:       rows,
		cols:       cols,
		maxHistory: maxHistory,
		history:    list.New(),
	}
	g.buf = make([][]Cell, rows)
	for y := range g.buf {
		g.buf[y] = make([]Cell, cols)
	}
	return g
}

func (g *MemGrid) Rows() int { return g.rows }
func (g *MemGrid) Cols() int { return g.cols }

func (g *MemGrid) Cell(y, x int) *Cell {
	return &g.buf[y][x]
}

func (g *MemGrid) Row(y int) []Cell {
	return g.buf[y]
}

func (g *MemGrid) Visible() [][]Cell {
	return g.buf
}

func (g *MemGrid) CopyRow(dst, src int) {
	copy(g.buf[dst], g.buf[src])
}

// Scrollback returns the retained history lines, oldest first, as plain
// strings using the same trailing-blank trimming TestString applies to
// visible rows. Not part of the Grid interface: it is scrollback-specific
// surface a renderer may use directly, out of the core's concern.
func (g *MemGrid) Scrollback() []string {
	lines := make([]string, 0, g.history.Len())
	for e := g.history.Front(); e != nil; e = e.Next() {
		lines = append(lines, renderRow(e.Value.([]Cell)))
	}
	return lines
}

func (g *MemGrid) Scroll(delta int) {
	switch {
	case delta > 0:
		for i := 0; i < delta; i++ {
			g.scrollUpOne()
		}
	case delta < 0:
		for i := 0; i < -delta; i++ {
			g.scrollDownOne()
		}
	}
}

func (g *MemGrid) scrollUpOne() {
	if g.rows == 0 {
		return
	}
	evicted := g.buf[0]
	g.pushHistory(evicted)
	copy(g.buf[0:], g.buf[1:])
	g.buf[g.rows-1] = make([]Cell, g.cols)
}

func (g *MemGrid) scrollDownOne() {
	if g.rows == 0 {
		return
	}
	copy(g.buf[1:], g.buf[0:g.rows-1])
	g.buf[0] = make([]Cell, g.cols)
}

func (g *MemGrid) pushHistory(row []Cell) {
	if g.maxHistory <= 0 {
		return
	}
	cp := make([]Cell, len(row))
	copy(cp, row)
	g.history.PushBack(cp)
	for g.history.Len() > g.maxHistory {
		g.history.Remove(g.history.Front())
	}
}

// Resize preserves existing content top-left-anchored: shrinking drops
// the excess rows/columns, growing blank-fills the new space. Scrollback
// is left untouched and history lines are never rewrapped.
func (g *MemGrid) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 || (rows == g.rows && cols == g.cols) {
		return
	}

	newBuf := make([][]Cell, rows)
	for y := 0; y < rows; y++ {
		newBuf[y] = make([]Cell, cols)
		if y < g.rows {
			n := cols
			if len(g.buf[y]) < n {
				n = len(g.buf[y])
			}
			copy(newBuf[y], g.buf[y][:n])
		}
	}
	g.buf = newBuf
	g.rows = rows
	g.cols = cols
}

func (g *MemGrid) TestString() string {
	lines := make([]string, g.rows)
	for y := 0; y < g.rows; y++ {
		lines[y] = renderRow(g.buf[y])
	}
	return strings.Join(lines, "\n")
}

// renderRow renders Char == 0 as a space and trims the trailing blanks,
// matching NativeScreen.GetDisplay()'s strings.TrimRight(line, " ").
func renderRow(row []Cell) string {
	var b strings.Builder
	b.Grow(len(row))
	for _, c := range row {
		if c.Char == 0 {
			b.WriteRune(' ')
		} else {
			b.WriteRune(c.Char)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

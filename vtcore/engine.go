// Package vtcore is the core terminal emulation engine: a grid of styled
// cells plus a cursor, exposing the primitive operations a control-
// sequence parser invokes as it decodes CSI/ESC/SGR bytes. The engine has
// no threads, no I/O, and no callbacks; it is a pure data structure a
// single writer mutates and a renderer reads.
package vtcore

import (
	"log"
	"strings"

	"github.com/tetherssh/vtcore/internal/grid"
	"github.com/tetherssh/vtcore/internal/palette"
	"github.com/tetherssh/vtcore/internal/tabstop"
)

const defaultTabInterval = 8

// Terminal owns exactly one Grid, one tabstop.Set, one Cursor, one saved
// Cursor, one Region, and the mode flags.
type Terminal struct {
	cols, rows int

	grid grid.Grid
	tabs *tabstop.Set

	cursor Cursor
	saved  Cursor

	region Region
	modes  Modes
}

// New builds a Terminal over a default in-memory Grid with no scrollback
// retention.
func New(cols, rows int) *Terminal {
	return NewWithScrollback(cols, rows, 0)
}

// NewWithScrollback builds a Terminal over a default in-memory Grid that
// retains up to maxHistory rows displaced by upward scrolling.
func NewWithScrollback(cols, rows, maxHistory int) *Terminal {
	return NewWithGrid(grid.New(rows, cols, maxHistory), cols, rows)
}

// NewWithGrid builds a Terminal over a caller-supplied Grid, letting a
// host swap in its own storage/scrollback layer; the engine treats the
// grid purely as an external collaborator.
func NewWithGrid(g grid.Grid, cols, rows int) *Terminal {
	return &Terminal{
		cols:   cols,
		rows:   rows,
		grid:   g,
		tabs:   tabstop.New(cols, defaultTabInterval),
		region: Region{Top: 0, Bottom: rows - 1},
		modes:  Modes{Autowrap: true},
	}
}

// Cols and Rows report the current geometry.
func (t *Terminal) Cols() int { return t.cols }
func (t *Terminal) Rows() int { return t.rows }

// CursorPos reports the 0-indexed cursor position.
func (t *Terminal) CursorPos() (x, y int) { return t.cursor.X, t.cursor.Y }

// PendingWrap reports the deferred-wrap flag (LCF).
func (t *Terminal) PendingWrap() bool { return t.cursor.PendingWrap }

// RegionBounds reports the 0-indexed, inclusive scrolling region.
func (t *Terminal) RegionBounds() (top, bottom int) { return t.region.Top, t.region.Bottom }

// Modes reports the current mode flags.
func (t *Terminal) Modes() Modes { return t.modes }

// SetOriginMode, SetAutowrap, and SetReverseColors flip the three mode
// flags the engine recognizes.
func (t *Terminal) SetOriginMode(on bool)     { t.modes.Origin = on }
func (t *Terminal) SetAutowrap(on bool)       { t.modes.Autowrap = on }
func (t *Terminal) SetReverseColors(on bool)  { t.modes.ReverseColors = on }

// Pen returns a copy of the cursor's current pen template.
func (t *Terminal) Pen() grid.Cell { return t.cursor.Pen }

// Cell returns a copy of the cell at (y, x), for inspection by callers
// (e.g. a renderer, or a test checking the soft-wrap marker).
func (t *Terminal) Cell(y, x int) grid.Cell { return *t.grid.Cell(y, x) }

// PlainString serializes the visible screen: rows joined by "\n", with
// each row's trailing blank cells dropped and trailing blank rows
// dropped, so printing a short string on a fresh screen reads back as
// exactly that string.
func (t *Terminal) PlainString() string {
	return strings.TrimRight(t.grid.TestString(), "\n")
}

// Print writes a single Unicode scalar at the cursor.
func (t *Terminal) Print(c rune) {
	if t.cursor.PendingWrap && t.modes.Autowrap {
		t.grid.Cell(t.cursor.Y, t.cursor.X).Wrap = true
		t.index()
		t.cursor.X = 0
	}

	cell := t.grid.Cell(t.cursor.Y, t.cursor.X)
	*cell = t.cursor.Pen
	cell.Char = c

	t.cursor.X++
	if t.cursor.X == t.cols {
		t.cursor.X = t.cols - 1
		t.cursor.PendingWrap = true
	}
}

// PrintString writes each rune of s via Print, in order. A convenience
// for driving the engine directly, without a parser in front of it.
func (t *Terminal) PrintString(s string) {
	for _, c := range s {
		t.Print(c)
	}
}

// --- Cursor motion ---

func (t *Terminal) CursorLeft(n int) {
	if n < 1 {
		n = 1
	}
	t.cursor.X = clampMin(t.cursor.X-n, 0)
}

func (t *Terminal) CursorRight(n int) {
	t.cursor.X = clampMax(t.cursor.X+n, t.cols-1)
}

func (t *Terminal) CursorDown(n int) {
	t.cursor.Y = clampMax(t.cursor.Y+n, t.rows-1)
}

func (t *Terminal) CursorUp(n int) {
	t.cursor.Y = clampMin(t.cursor.Y-n, 0)
}

func (t *Terminal) Backspace() {
	t.cursor.X = clampMin(t.cursor.X-1, 0)
}

func (t *Terminal) CarriageReturn() {
	t.cursor.X = 0
	t.cursor.PendingWrap = false
}

// Linefeed is equivalent to Index.
func (t *Terminal) Linefeed() { t.index() }

// SetCursorPos moves the cursor to (row, col), 1-indexed.
func (t *Terminal) SetCursorPos(row, col int) {
	if row < 1 {
		row = 1
	}
	if col < 1 {
		col = 1
	}

	x := col
	if x > t.cols {
		x = t.cols
	}
	x--

	var y int
	if t.modes.Origin {
		absRow := t.region.Top + row
		if absRow > t.region.Bottom+1 {
			absRow = t.region.Bottom + 1
		}
		y = absRow - 1
	} else {
		absRow := row
		if absRow > t.rows {
			absRow = t.rows
		}
		y = absRow - 1
	}

	t.cursor.X = x
	t.cursor.Y = y
	t.cursor.PendingWrap = false
}

// --- Index / reverse index ---

// Index advances one row, scrolling the region if the cursor sits at the
// physical bottom and inside it.
func (t *Terminal) Index() { t.index() }

func (t *Terminal) index() {
	t.cursor.PendingWrap = false

	atBottom := t.cursor.Y == t.rows-1
	switch {
	case atBottom && t.region.contains(t.cursor.Y):
		t.scrollUp(1)
	case atBottom:
		// outside the region: no-op, distinct from CursorDown, which never
		// scrolls or consults the region
	default:
		t.cursor.Y++
	}
}

// ReverseIndex retreats one row, scrolling the region down when the
// cursor sits on the physical top row.
//
// This honors the region symmetrically with Index: the trigger is the
// physical top row, and it scrolls only when that row is inside the
// region, the same way Index gates its physical-bottom trigger on region
// membership.
func (t *Terminal) ReverseIndex() {
	atTop := t.cursor.Y == 0
	switch {
	case atTop && t.region.contains(t.cursor.Y):
		t.scrollDown(1)
	case atTop:
		// outside the region: no-op, symmetric with Index's outside-region case
	default:
		t.cursor.Y--
	}
}

// --- Scroll primitives ---

// scrollUp shifts rows up by n. When the region spans the full screen
// this is the grid's opaque scroll-delta primitive (rows displaced off
// the top go to scrollback, per the storage-layer contract); a narrower
// region scrolls only within its band and does not feed scrollback,
// since region-confined content isn't the primary screen history.
func (t *Terminal) scrollUp(n int) {
	if n < 1 {
		return
	}
	if t.region.Top == 0 && t.region.Bottom == t.rows-1 {
		t.grid.Scroll(n)
		return
	}
	for i := 0; i < n; i++ {
		for y := t.region.Top; y < t.region.Bottom; y++ {
			t.grid.CopyRow(y, y+1)
		}
		t.blankRow(t.region.Bottom, 0, t.cols)
	}
}

// scrollDown preserves the cursor, homes it to the region's top, invokes
// insertLines(n), then restores the cursor.
func (t *Terminal) scrollDown(n int) {
	saved := t.cursor
	t.cursor.X = 0
	t.cursor.Y = t.region.Top
	t.insertLines(n)
	t.cursor = saved
}

// --- Line operations ---

// InsertLines inserts n blank lines at the cursor's row within the
// scrolling region. A cursor outside the region is a no-op.
func (t *Terminal) InsertLines(n int) { t.insertLines(n) }

func (t *Terminal) insertLines(n int) {
	y := t.cursor.Y
	if !t.region.contains(y) {
		return
	}
	if n < 1 {
		n = 1
	}

	t.cursor.X = 0
	remaining := t.region.Bottom - y + 1
	k := n
	if k > remaining {
		k = remaining
	}

	for r := t.region.Bottom; r >= y+k; r-- {
		t.grid.CopyRow(r, r-k)
	}
	t.blankRow(y, 0, t.cols)
	for r := y + 1; r < y+k; r++ {
		t.blankRow(r, 0, t.cols)
	}
}

// DeleteLines deletes n lines at the cursor's row within the scrolling
// region. A cursor outside the region is a no-op.
func (t *Terminal) DeleteLines(n int) { t.deleteLines(n) }

func (t *Terminal) deleteLines(n int) {
	y := t.cursor.Y
	if !t.region.contains(y) {
		return
	}
	if n < 1 {
		n = 1
	}

	t.cursor.X = 0
	remaining := t.region.Bottom - y + 1
	k := n
	if k > remaining {
		k = remaining
	}

	for r := y; r <= t.region.Bottom-k; r++ {
		t.grid.CopyRow(r, r+k)
	}
	for r := t.region.Bottom - k + 1; r <= t.region.Bottom; r++ {
		t.blankRow(r, 0, t.cols)
	}
}

// --- Character operations ---

// DeleteChars shifts cells left from x+n into x, zeroing the char of the
// newly exposed right tail. Existing attrs in the tail are left as-is;
// the cursor does not move.
func (t *Terminal) DeleteChars(n int) {
	if n < 1 {
		n = 1
	}
	x := t.cursor.X
	if n > t.cols-x {
		n = t.cols - x
	}
	if n <= 0 {
		return
	}
	row := t.grid.Row(t.cursor.Y)
	copy(row[x:], row[x+n:])
	for i := t.cols - n; i < t.cols; i++ {
		row[i].Char = 0
	}
}

// EraseChars overwrites [x, min(cols, x+n)) with the pen and zeroes char.
// The cursor does not move.
func (t *Terminal) EraseChars(n int) {
	if n < 1 {
		n = 1
	}
	end := t.cursor.X + n
	if end > t.cols {
		end = t.cols
	}
	t.blankRow(t.cursor.Y, t.cursor.X, end)
}

// --- Erase modes ---

func (t *Terminal) EraseDisplay(mode EraseDisplayMode) error {
	switch mode {
	case EraseDisplayComplete:
		for y := 0; y < t.rows; y++ {
			t.blankRow(y, 0, t.cols)
		}
	case EraseDisplayBelow:
		t.blankRow(t.cursor.Y, t.cursor.X, t.cols)
		for y := t.cursor.Y + 1; y < t.rows; y++ {
			t.blankRow(y, 0, t.cols)
		}
	case EraseDisplayAbove:
		t.blankRow(t.cursor.Y, 0, t.cursor.X+1)
		for y := 0; y < t.cursor.Y; y++ {
			t.blankRow(y, 0, t.cols)
		}
	default:
		log.Printf("vtcore: eraseDisplay: unimplemented mode %d", mode)
		return ErrUnimplementedMode
	}
	return nil
}

func (t *Terminal) EraseLine(mode EraseLineMode) error {
	switch mode {
	case EraseLineRight:
		t.blankRow(t.cursor.Y, t.cursor.X, t.cols)
	case EraseLineLeft:
		t.blankRow(t.cursor.Y, 0, t.cursor.X)
	case EraseLineComplete:
		t.blankRow(t.cursor.Y, 0, t.cols)
	default:
		log.Printf("vtcore: eraseLine: unimplemented mode %d", mode)
		return ErrUnimplementedMode
	}
	return nil
}

func (t *Terminal) blankRow(y, start, end int) {
	row := t.grid.Row(y)
	for x := start; x < end; x++ {
		row[x] = t.cursor.Pen
		row[x].Char = 0
	}
}

// --- Scrolling region ---

// SetScrollingRegion sets the scrolling region bounds, 1-indexed.
func (t *Terminal) SetScrollingRegion(top, bottom int) {
	tt := top
	if tt < 1 {
		tt = 1
	}
	bb := bottom
	if bb <= 0 {
		bb = t.rows
	}
	if bb > t.rows {
		bb = t.rows
	}
	if tt >= bb {
		tt = 1
		bb = t.rows
	}

	t.region = Region{Top: tt - 1, Bottom: bb - 1}
	t.SetCursorPos(1, 1)
}

// --- Cursor save/restore ---

func (t *Terminal) SaveCursor()    { t.saved = t.cursor }
func (t *Terminal) RestoreCursor() { t.cursor = t.saved }

// --- SGR application ---

func (t *Terminal) SetAttribute(attr Attribute) error {
	switch attr.Kind {
	case AttrUnset:
		t.cursor.Pen.Fg = nil
		t.cursor.Pen.Bg = nil
		t.cursor.Pen.Attrs = grid.Attrs{}
	case AttrBold:
		t.cursor.Pen.Bold = true
	case AttrUnderline:
		t.cursor.Pen.Underline = true
	case AttrInverse:
		t.cursor.Pen.Inverse = true
	case AttrFgDirect:
		c := attr.Color
		t.cursor.Pen.Fg = &c
	case AttrBgDirect:
		c := attr.Color
		t.cursor.Pen.Bg = &c
	case Attr8Fg:
		c := palette.Resolve8(attr.Index)
		t.cursor.Pen.Fg = &c
	case Attr8Bg:
		c := palette.Resolve8(attr.Index)
		t.cursor.Pen.Bg = &c
	case Attr8BrightFg:
		c := palette.Resolve8Bright(attr.Index)
		t.cursor.Pen.Fg = &c
	case Attr8BrightBg:
		c := palette.Resolve8Bright(attr.Index)
		t.cursor.Pen.Bg = &c
	case Attr256Fg:
		c := palette.Resolve256(attr.Index)
		t.cursor.Pen.Fg = &c
	case Attr256Bg:
		c := palette.Resolve256(attr.Index)
		t.cursor.Pen.Bg = &c
	default:
		return ErrInvalidAttribute
	}
	return nil
}

// --- Tabs ---

// HorizontalTab walks the cursor to the next tabstop, printing spaces
// along the way, and never past the last column.
func (t *Terminal) HorizontalTab() {
	for {
		if t.cursor.X == t.cols-1 {
			return
		}
		t.Print(' ')
		if t.tabs.Get(t.cursor.X) {
			return
		}
	}
}

func (t *Terminal) TabSet() { t.tabs.Set(t.cursor.X) }

func (t *Terminal) TabClear(mode TabClearMode) error {
	switch mode {
	case TabClearCurrent:
		t.tabs.Unset(t.cursor.X)
	case TabClearAll:
		t.tabs.Reset(0)
	default:
		log.Printf("vtcore: tabClear: unimplemented mode %d, ignoring", mode)
		return ErrUnimplementedMode
	}
	return nil
}

// --- DEC screen alignment ---

// DECALN resets the scrolling region to full screen (homing the cursor)
// and fills every cell with 'E' under a neutral pen.
func (t *Terminal) DECALN() {
	t.SetScrollingRegion(0, 0)
	for y := 0; y < t.rows; y++ {
		row := t.grid.Row(y)
		for x := range row {
			row[x] = grid.Cell{Char: 'E'}
		}
	}
}

// --- Resize ---

func (t *Terminal) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	if cols != t.cols {
		t.tabs.Resize(cols, defaultTabInterval)
	}
	t.grid.Resize(rows, cols)
	t.cols = cols
	t.rows = rows
	t.region = Region{Top: 0, Bottom: rows - 1}

	t.cursor.X = clampMax(clampMin(t.cursor.X, 0), cols-1)
	t.cursor.Y = clampMax(clampMin(t.cursor.Y, 0), rows-1)
	t.cursor.PendingWrap = false
}

func clampMin(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

func clampMax(v, hi int) int {
	if v > hi {
		return hi
	}
	return v
}

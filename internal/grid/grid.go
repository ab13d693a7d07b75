// Package grid implements the storage-layer collaborator the engine
// treats as an opaque cell grid with row access and a scroll primitive.
// The engine in package vtcore consumes a Grid purely through the Grid
// interface; it never reaches into row internals.
package grid

import "github.com/tetherssh/vtcore/internal/palette"

// Attrs holds the boolean style bits a Cell carries, independent of color.
type Attrs struct {
	Bold       bool
	Underline  bool
	Inverse    bool
	Wrap       bool // soft-wrap marker: line continues on the row below
}

// Cell is one addressable unit of the grid. Char == 0 denotes an
// empty/erased cell. Fg/Bg are nil when the cell uses the default color.
// A Cell value also serves as the cursor's pen template: its Char field
// is overwritten per print, everything else is copied verbatim into the
// printed cell.
type Cell struct {
	Char rune
	Fg   *palette.RGB
	Bg   *palette.RGB
	Attrs
}

// Grid is the storage-layer contract the engine consumes. Implementations
// own row allocation and any scrollback/eviction policy; the engine only
// ever sees the visible rows×cols window.
type Grid interface {
	Rows() int
	Cols() int

	// Cell returns a mutable pointer to the cell at (y, x).
	Cell(y, x int) *Cell
	// Row returns a mutable slice of length Cols() for row y.
	Row(y int) []Cell
	// Visible returns the full rows×cols window as row slices, each
	// mutable and aliasing the underlying storage.
	Visible() [][]Cell
	// CopyRow overwrites row dst with a copy of row src's contents.
	CopyRow(dst, src int)

	// Scroll shifts every visible row by delta (positive scrolls the
	// content up, revealing new blank rows at the bottom; negative
	// scrolls down, revealing new blank rows at the top). Rows displaced
	// off the top by a positive delta are handed to scrollback rather
	// than discarded.
	Scroll(delta int)

	// Resize changes the visible geometry. Existing content is
	// preserved top-left-anchored; grown rows/columns are blank-filled.
	// No reflow is performed: content is never rewrapped across rows.
	Resize(rows, cols int)

	// TestString renders the visible grid for inspection: rows joined by
	// "\n", trailing blank cells on each row dropped.
	TestString() string
}

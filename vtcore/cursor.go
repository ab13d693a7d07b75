package vtcore

import "github.com/tetherssh/vtcore/internal/grid"

// Cursor holds the engine's addressable position plus the pen style
// applied to future prints and the deferred-wrap flag (LCF).
//
// PendingWrap is kept as its own bool rather than folded into X: a
// cursor sitting at the last column mid-print is a distinct state from
// one that has actually wrapped, and collapsing the two into x == cols
// loses that distinction on the next print.
type Cursor struct {
	X, Y        int
	Pen         grid.Cell
	PendingWrap bool
}

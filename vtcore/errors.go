package vtcore

import "errors"

// Coordinate errors are never reported — out-of-range rows/columns are
// clamped, not surfaced.
//
// There is deliberately no allocation-failure sentinel for operations
// that may grow storage (resize, erase). Go's slice/map allocation has
// no recoverable failure mode a caller can usefully act on — an
// out-of-memory condition panics the runtime rather than returning an
// error — so a host embedding vtcore in an environment with a fallible
// allocator would add one at the Grid implementation it supplies.
var (
	// ErrInvalidAttribute is returned by SetAttribute for an SGR variant
	// outside the closed set AttributeKind enumerates. The pen is left
	// unchanged.
	ErrInvalidAttribute = errors.New("vtcore: invalid attribute")

	// ErrUnimplementedMode is returned by EraseDisplay, EraseLine, and
	// TabClear for a recognized-but-unsupported mode value. The engine
	// logs and no-ops rather than aborting.
	ErrUnimplementedMode = errors.New("vtcore: unimplemented mode")
)

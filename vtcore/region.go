package vtcore

// Region is the scrolling region: a closed [Top, Bottom] row band,
// 0-indexed and inclusive, within which index/insertLines/deleteLines
// scroll. Relative motion operations (CursorUp/Down/Left/Right) never
// consult it; SetCursorPos does in origin mode.
type Region struct {
	Top, Bottom int
}

func (r Region) contains(y int) bool {
	return y >= r.Top && y <= r.Bottom
}

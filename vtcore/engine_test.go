package vtcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetherssh/vtcore/vtcore"
)

func TestPrintAdvancesCursor(t *testing.T) {
	term := vtcore.New(10, 3)
	term.PrintString("hi")

	x, y := term.CursorPos()
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, "hi", term.PlainString())
}

func TestPrintAtLastColumnSetsPendingWrapWithoutMoving(t *testing.T) {
	term := vtcore.New(3, 2)
	term.PrintString("abc")

	x, y := term.CursorPos()
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)
	assert.True(t, term.PendingWrap())
}

func TestPrintPastLastColumnWrapsAndMarksSoftWrap(t *testing.T) {
	term := vtcore.New(3, 2)
	term.PrintString("abcd")

	x, y := term.CursorPos()
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
	assert.False(t, term.PendingWrap())
	assert.True(t, term.Cell(0, 2).Wrap)
	assert.Equal(t, "abc\nd", term.PlainString())
}

func TestCarriageReturnClearsPendingWrap(t *testing.T) {
	term := vtcore.New(3, 2)
	term.PrintString("abc")
	require.True(t, term.PendingWrap())

	term.CarriageReturn()
	x, _ := term.CursorPos()
	assert.Equal(t, 0, x)
	assert.False(t, term.PendingWrap())
}

func TestCursorMotionClampsToScreen(t *testing.T) {
	term := vtcore.New(5, 5)

	term.CursorUp(10)
	_, y := term.CursorPos()
	assert.Equal(t, 0, y)

	term.CursorDown(10)
	_, y = term.CursorPos()
	assert.Equal(t, 4, y)

	term.CursorLeft(10)
	x, _ := term.CursorPos()
	assert.Equal(t, 0, x)

	term.CursorRight(10)
	x, _ = term.CursorPos()
	assert.Equal(t, 4, x)
}

// Index at the screen's physical bottom row, with that row inside the
// active (here full-screen) region, scrolls the whole grid up one.
func TestIndexAtBottomScrollsFullScreen(t *testing.T) {
	term := vtcore.New(3, 2)
	term.PrintString("AB")
	term.CarriageReturn()
	term.CursorDown(1)
	term.PrintString("CD")

	term.Index()

	assert.Equal(t, "CD", term.PlainString())
	_, y := term.CursorPos()
	assert.Equal(t, 1, y)
}

func TestReverseIndexAtTopScrollsDown(t *testing.T) {
	term := vtcore.New(3, 2)
	term.PrintString("AB")

	term.ReverseIndex()

	assert.Equal(t, "\nAB", term.PlainString())
	_, y := term.CursorPos()
	assert.Equal(t, 0, y)
}

// SetCursorPos in origin mode remaps into the active region: an 80-row
// screen with region [9, 79] (0-indexed), row=1 lands at the region's
// top and row=100 clamps to the region's bottom.
func TestSetCursorPosOriginModeClampsToRegion(t *testing.T) {
	term := vtcore.New(80, 80)
	term.SetScrollingRegion(10, 80)
	term.SetOriginMode(true)

	term.SetCursorPos(1, 1)
	_, y := term.CursorPos()
	assert.Equal(t, 9, y)

	term.SetCursorPos(100, 1)
	_, y = term.CursorPos()
	assert.Equal(t, 79, y)
}

func TestSetScrollingRegionHomesCursor(t *testing.T) {
	term := vtcore.New(10, 10)
	term.CursorDown(5)

	term.SetScrollingRegion(3, 7)

	top, bottom := term.RegionBounds()
	assert.Equal(t, 2, top)
	assert.Equal(t, 6, bottom)
	x, y := term.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func fillRows(t *vtcore.Terminal, rows ...string) {
	for i, row := range rows {
		t.SetCursorPos(i+1, 1)
		t.PrintString(row)
	}
}

func TestInsertLinesShiftsRowsDownWithinRegionAndDropsOverflow(t *testing.T) {
	term := vtcore.New(3, 4)
	fillRows(term, "AAA", "BBB", "CCC", "DDD")
	term.SetCursorPos(2, 1)

	term.InsertLines(1)

	assert.Equal(t, "AAA\n\nBBB\nCCC", term.PlainString())
}

func TestDeleteLinesShiftsRowsUpWithinRegion(t *testing.T) {
	term := vtcore.New(3, 4)
	fillRows(term, "AAA", "BBB", "CCC", "DDD")
	term.SetCursorPos(2, 1)

	term.DeleteLines(1)

	assert.Equal(t, "AAA\nCCC\nDDD", term.PlainString())
}

func TestDeleteCharsShiftsRowLeft(t *testing.T) {
	term := vtcore.New(5, 1)
	term.PrintString("abcde")
	term.SetCursorPos(1, 2)

	term.DeleteChars(2)

	assert.Equal(t, "ade", term.PlainString())
}

func TestEraseCharsBlanksRangeWithoutMovingCursor(t *testing.T) {
	term := vtcore.New(5, 1)
	term.PrintString("abcde")
	term.SetCursorPos(1, 2)

	term.EraseChars(2)

	x, _ := term.CursorPos()
	assert.Equal(t, 1, x)
	assert.Equal(t, "a  de", term.PlainString())
}

func TestEraseDisplayModes(t *testing.T) {
	newFilled := func() *vtcore.Terminal {
		term := vtcore.New(3, 3)
		fillRows(term, "AAA", "BBB", "CCC")
		term.SetCursorPos(2, 2)
		return term
	}

	t.Run("below", func(t *testing.T) {
		term := newFilled()
		require.NoError(t, term.EraseDisplay(vtcore.EraseDisplayBelow))
		assert.Equal(t, "AAA\nB", term.PlainString())
	})

	t.Run("above", func(t *testing.T) {
		term := newFilled()
		require.NoError(t, term.EraseDisplay(vtcore.EraseDisplayAbove))
		assert.Equal(t, "\n  B\nCCC", term.PlainString())
	})

	t.Run("complete", func(t *testing.T) {
		term := newFilled()
		require.NoError(t, term.EraseDisplay(vtcore.EraseDisplayComplete))
		assert.Equal(t, "", term.PlainString())
	})
}

func TestEraseLineModes(t *testing.T) {
	newRow := func() *vtcore.Terminal {
		term := vtcore.New(5, 1)
		term.PrintString("abcde")
		term.SetCursorPos(1, 3)
		return term
	}

	t.Run("right includes the cursor cell", func(t *testing.T) {
		term := newRow()
		require.NoError(t, term.EraseLine(vtcore.EraseLineRight))
		assert.Equal(t, "ab", term.PlainString())
	})

	t.Run("left excludes the cursor cell", func(t *testing.T) {
		term := newRow()
		require.NoError(t, term.EraseLine(vtcore.EraseLineLeft))
		assert.Equal(t, "  cde", term.PlainString())
	})

	t.Run("complete", func(t *testing.T) {
		term := newRow()
		require.NoError(t, term.EraseLine(vtcore.EraseLineComplete))
		assert.Equal(t, "", term.PlainString())
	})
}

func TestSaveRestoreCursorRoundTrips(t *testing.T) {
	term := vtcore.New(10, 10)
	term.SetCursorPos(3, 4)
	term.SaveCursor()

	term.SetCursorPos(9, 9)
	term.RestoreCursor()

	x, y := term.CursorPos()
	assert.Equal(t, 3, x)
	assert.Equal(t, 2, y)
}

func TestSetAttributeBoldPersistsAcrossPrints(t *testing.T) {
	term := vtcore.New(5, 1)
	require.NoError(t, term.SetAttribute(vtcore.BoldAttribute()))

	term.PrintString("hi")

	assert.True(t, term.Cell(0, 0).Bold)
	assert.True(t, term.Cell(0, 1).Bold)
}

func TestSetAttributeUnsetClearsPen(t *testing.T) {
	term := vtcore.New(5, 1)
	require.NoError(t, term.SetAttribute(vtcore.BoldAttribute()))
	require.NoError(t, term.SetAttribute(vtcore.UnsetAttribute()))

	term.PrintString("x")

	assert.False(t, term.Cell(0, 0).Bold)
}

func TestSetAttributeRejectsUnknownKind(t *testing.T) {
	term := vtcore.New(5, 1)
	err := term.SetAttribute(vtcore.Attribute{Kind: vtcore.AttributeKind(999)})
	assert.ErrorIs(t, err, vtcore.ErrInvalidAttribute)
}

// Default tabstops fall at interval-1, 2*interval-1, ...: columns 7, 15,
// 23 for the default interval of 8, not 0, 8, 16.
func TestHorizontalTabStopsAtDefaultInterval(t *testing.T) {
	term := vtcore.New(20, 1)
	term.PrintString("1")

	term.HorizontalTab()
	x, _ := term.CursorPos()
	assert.Equal(t, 7, x)

	term.HorizontalTab()
	x, _ = term.CursorPos()
	assert.Equal(t, 15, x)
}

func TestTabSetThenClearAffectsNextTabStop(t *testing.T) {
	term := vtcore.New(20, 1)
	term.SetCursorPos(1, 4) // column 3
	term.TabSet()

	term.SetCursorPos(1, 1)
	term.HorizontalTab()
	x, _ := term.CursorPos()
	require.Equal(t, 3, x, "custom stop should be reached before the default interval stop")

	require.NoError(t, term.TabClear(vtcore.TabClearCurrent))
	term.HorizontalTab()
	x, _ = term.CursorPos()
	assert.Equal(t, 7, x, "clearing the custom stop should fall through to the default interval")
}

func TestTabClearAllRemovesEveryStop(t *testing.T) {
	term := vtcore.New(20, 1)
	require.NoError(t, term.TabClear(vtcore.TabClearAll))

	term.HorizontalTab()

	x, _ := term.CursorPos()
	assert.Equal(t, 19, x)
}

func TestDECALNFillsScreenAndResetsRegion(t *testing.T) {
	term := vtcore.New(3, 4)
	term.SetScrollingRegion(2, 3)

	term.DECALN()

	assert.Equal(t, "EEE\nEEE\nEEE\nEEE", term.PlainString())
	top, bottom := term.RegionBounds()
	assert.Equal(t, 0, top)
	assert.Equal(t, 3, bottom)
}

func TestResizeGrowPreservesContentAndClampsCursor(t *testing.T) {
	term := vtcore.New(3, 2)
	term.PrintString("hi")
	term.SetCursorPos(2, 3)

	term.Resize(5, 5)

	assert.Equal(t, 5, term.Cols())
	assert.Equal(t, 5, term.Rows())
	assert.Equal(t, "hi", term.PlainString())
	x, y := term.CursorPos()
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

func TestResizeShrinkClampsCursorInsideNewBounds(t *testing.T) {
	term := vtcore.New(5, 5)
	term.SetCursorPos(5, 5)

	term.Resize(2, 2)

	x, y := term.CursorPos()
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
	assert.False(t, term.PendingWrap())
}

// A scrolling region only confines Index's scroll once the cursor
// reaches the screen's physical bottom row; a region whose bottom sits
// above the physical bottom is otherwise just a line the cursor passes
// through on its way down.
func TestScrollingRegionConfinesIndexScrollAtPhysicalBottom(t *testing.T) {
	term := vtcore.New(3, 5)
	fillRows(term, "111", "222", "333", "444", "555")
	term.SetScrollingRegion(2, 5)
	term.SetCursorPos(5, 1)

	term.Index()

	assert.Equal(t, "111\n333\n444\n555", term.PlainString())
}

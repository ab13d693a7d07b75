package vtcore

import "github.com/tetherssh/vtcore/internal/palette"

// AttributeKind tags the closed set of SGR variants SetAttribute accepts.
// Represented as a tagged sum rather than a loose int code. The
// constructors below fill only the payload each kind uses; Attribute is a
// plain struct, so a hand-built value may carry an unused payload (which
// SetAttribute ignores) or a kind outside this set (which SetAttribute
// rejects).
type AttributeKind int

const (
	AttrUnset AttributeKind = iota
	AttrBold
	AttrUnderline
	AttrInverse
	AttrFgDirect
	AttrBgDirect
	Attr8Fg
	Attr8Bg
	Attr8BrightFg
	Attr8BrightBg
	Attr256Fg
	Attr256Bg
)

// Attribute is one SGR variant to apply to the cursor's pen. Color carries
// the payload for the two direct-color variants; Index carries the
// palette index for the 8-color, 8-bright, and 256-color variants.
type Attribute struct {
	Kind  AttributeKind
	Color palette.RGB
	Index int
}

func UnsetAttribute() Attribute       { return Attribute{Kind: AttrUnset} }
func BoldAttribute() Attribute        { return Attribute{Kind: AttrBold} }
func UnderlineAttribute() Attribute   { return Attribute{Kind: AttrUnderline} }
func InverseAttribute() Attribute     { return Attribute{Kind: AttrInverse} }

func DirectColorFg(r, g, b uint8) Attribute {
	return Attribute{Kind: AttrFgDirect, Color: palette.RGB{R: r, G: g, B: b}}
}

func DirectColorBg(r, g, b uint8) Attribute {
	return Attribute{Kind: AttrBgDirect, Color: palette.RGB{R: r, G: g, B: b}}
}

func Color8Fg(index int) Attribute       { return Attribute{Kind: Attr8Fg, Index: index} }
func Color8Bg(index int) Attribute       { return Attribute{Kind: Attr8Bg, Index: index} }
func Color8BrightFg(index int) Attribute { return Attribute{Kind: Attr8BrightFg, Index: index} }
func Color8BrightBg(index int) Attribute { return Attribute{Kind: Attr8BrightBg, Index: index} }
func Color256Fg(index int) Attribute     { return Attribute{Kind: Attr256Fg, Index: index} }
func Color256Bg(index int) Attribute     { return Attribute{Kind: Attr256Bg, Index: index} }

// EraseDisplayMode selects EraseDisplay's behavior.
type EraseDisplayMode int

const (
	EraseDisplayBelow    EraseDisplayMode = iota // cursor to end-of-row, then rows below
	EraseDisplayAbove                            // start-of-row to and including cursor, then rows above
	EraseDisplayComplete                         // entire visible screen
)

// EraseLineMode selects EraseLine's behavior.
type EraseLineMode int

const (
	EraseLineRight    EraseLineMode = iota // [x, cols)
	EraseLineLeft                          // [0, x)
	EraseLineComplete                      // entire row
)

// TabClearMode selects TabClear's behavior. Values match the conventional
// VT100 TBC parameter so a caller can pass the decoded CSI parameter
// straight through.
type TabClearMode int

const (
	TabClearCurrent TabClearMode = 0
	TabClearAll     TabClearMode = 3
)

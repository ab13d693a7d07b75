package vtcore

// Modes holds the three core mode flags the engine tracks. ReverseColors
// is renderer-facing: the engine stores it but never reads it to change
// grid content.
type Modes struct {
	Origin        bool
	Autowrap      bool
	ReverseColors bool
}

// Command vtcoredemo builds a vtcore.Terminal, replays a small scripted
// sequence of operations against it (no control-sequence decoding — that
// parser is a separate concern this module doesn't implement), and
// prints the resulting screen.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tetherssh/vtcore/vtcore"
)

func main() {
	path := "vtcoredemo.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := loadConfig(path)
	if err != nil {
		log.Printf("vtcoredemo: %v, falling back to defaults", err)
		cfg = defaultConfig()
	}

	term := vtcore.NewWithScrollback(cfg.Cols, cfg.Rows, cfg.ScrollbackRows)
	log.Printf("vtcoredemo: terminal %dx%d, scrollback %d", cfg.Cols, cfg.Rows, cfg.ScrollbackRows)

	for _, line := range cfg.Script {
		if err := apply(term, line); err != nil {
			log.Printf("vtcoredemo: skipping %q: %v", line, err)
		}
	}

	fmt.Println(term.PlainString())
}

// apply interprets one scripted line. This is a demo convenience, not a
// terminal protocol decoder: real escape-sequence parsing is out of this
// module's scope.
func apply(term *vtcore.Terminal, line string) error {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(fields) == 0 || fields[0] == "" {
		return nil
	}

	cmd := fields[0]
	arg := ""
	if len(fields) == 2 {
		arg = fields[1]
	}

	switch cmd {
	case "print":
		term.PrintString(arg)
	case "cr":
		term.CarriageReturn()
	case "lf":
		term.Linefeed()
	case "tab":
		term.HorizontalTab()
	case "bold":
		return term.SetAttribute(vtcore.BoldAttribute())
	case "unbold":
		return term.SetAttribute(vtcore.UnsetAttribute())
	case "save":
		term.SaveCursor()
	case "restore":
		term.RestoreCursor()
	case "home":
		row, col, err := parsePos(arg)
		if err != nil {
			return err
		}
		term.SetCursorPos(row, col)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func parsePos(arg string) (row, col int, err error) {
	parts := strings.Fields(arg)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("home requires \"row col\", got %q", arg)
	}
	row, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	col, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

package ui

import (
	"fmt"
	"io"
	"os"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

var (
	forceColor   bool
	disableColor bool
)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// ColorEnabled reports whether output may carry color at all. It is false
// after -no-color or the mono theme.
func ColorEnabled() bool { return !disableColor }

func stdoutIsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// C wraps s in color when stdout is a terminal or color is forced.
func C(color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || stdoutIsTerminal() {
		return color + s + reset
	}
	return s
}

// OK reports a finished action on stdout.
func OK(msg string) { fmt.Println(C(Current().Success, "✔ "+msg)) }

// Fail reports an error on stderr.
func Fail(msg string) { fmt.Fprintln(os.Stderr, C(Current().Error, "✖ "+msg)) }

// Hint writes a muted line, used for empty states and tips.
func Hint(w io.Writer, msg string) { fmt.Fprintln(w, C(Current().Muted, msg)) }

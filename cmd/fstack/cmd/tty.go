package cmd

import (
	"io"
	"os"

	"github.com/corey/fstack/internal/app"
	"github.com/mattn/go-isatty"
)

// isTerminal returns true if w is a file connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveColor determines whether to use color output for w.
// mode is "auto", "always" or "never"; noColor forces it off.
func resolveColor(w io.Writer, mode string, noColor bool) bool {
	if noColor {
		return false
	}
	switch mode {
	case app.ColorAlways:
		return true
	case app.ColorNever:
		return false
	default: // auto
		return isTerminal(w)
	}
}

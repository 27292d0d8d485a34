package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorForcing picks the Lip Gloss color profile for printed output.
// disable wins over force; NO_COLOR counts as disable.
func SetColorForcing(force, disable bool) {
	switch {
	case disable || strings.TrimSpace(os.Getenv("NO_COLOR")) != "":
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	default:
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	}
}

// C renders s in style. Kept as a short alias for call sites building lines.
func C(style lipgloss.Style, s string) string { return style.Render(s) }

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Success, current.SymDone+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Error, current.SymFail+" "+msg))
}

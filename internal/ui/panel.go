package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ProgressBar renders completion as a bar plus percentage. An empty
// collection reads as 0%.
func ProgressBar(done, total, width int) string {
	width = max(width, 5)
	frac := 0.0
	if total > 0 {
		frac = min(float64(done)/float64(total), 1)
	}
	filled := int(frac * float64(width))
	t := Current()
	bar := C(t.Success, strings.Repeat("█", filled)) + C(t.Muted, strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3d%%", bar, int(frac*100))
}

// Panel frames lines in a box using the current theme.
func Panel(lines []string) string {
	t := Current()
	// visible width, ignoring escape sequences
	maxw := 0
	for _, ln := range lines {
		if w := ansi.StringWidth(ln); w > maxw {
			maxw = w
		}
	}
	var b strings.Builder
	b.WriteString(t.CornerTL + strings.Repeat(t.H, maxw+2) + t.CornerTR + "\n")
	for _, ln := range lines {
		pad := maxw - ansi.StringWidth(ln)
		b.WriteString(t.V + " " + ln + strings.Repeat(" ", pad) + " " + t.V + "\n")
	}
	b.WriteString(t.CornerBL + strings.Repeat(t.H, maxw+2) + t.CornerBR + "\n")
	return b.String()
}

// WritePanel prints Panel(lines) to w.
func WritePanel(w io.Writer, lines []string) {
	fmt.Fprint(w, Panel(lines))
}

// Truncate cuts s to width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

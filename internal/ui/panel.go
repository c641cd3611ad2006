package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// ProgressBar renders fraction p of width cells followed by the percentage.
func ProgressBar(p, percent float64, width int) string {
	if width < 5 {
		width = 5
	}
	if p < 0 || math.IsNaN(p) {
		p = 0
	}
	filled := int(math.Round(p * float64(width)))
	if filled > width {
		filled = width
	}
	t := Current()
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %5.1f%%", bar, percent)
}

// Truncate shortens s to at most width printable cells, ending in "…".
func Truncate(s string, width int) string {
	if ansi.PrintableRuneWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if vis := ansi.PrintableRuneWidth(ln); vis > maxw {
			maxw = vis
		}
	}
	pad := func(s string) string {
		if vis := ansi.PrintableRuneWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

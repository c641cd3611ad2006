package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	BoxUnpacked, BoxPacked                        string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	BarFull, BarEmpty                             string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgViolet,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		BoxUnpacked: "☐", BoxPacked: "☑",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		BarFull: "█", BarEmpty: "░",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			BoxUnpacked: "◻", BoxPacked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			BarFull: "━", BarEmpty: "┄",
		}
	case "mono":
		disableColor = true
		current = Theme{
			BoxUnpacked: "[ ]", BoxPacked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			BarFull: "#", BarEmpty: ".",
		}
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }

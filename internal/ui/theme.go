package ui

import (
	"strings"

	"github.com/Makepad-fr/shoresquad/internal/model"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Warning string
	DebrisLow, DebrisMedium, DebrisHigh           string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymBeach, SymUser                             string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Warning: "\033[93m",
			DebrisLow: "\033[92m", DebrisMedium: "\033[93m", DebrisHigh: "\033[91m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymBeach: "◆", SymUser: "◉",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Name:     "mono",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymBeach: "*", SymUser: "@",
		}
	default: // classic
		current = Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Warning: fgYellow,
			DebrisLow: fgGreen, DebrisMedium: fgYellow, DebrisHigh: fgRed,
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymBeach: "●", SymUser: "◉",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }

// DebrisColor picks the palette entry for a debris level.
func (t Theme) DebrisColor(d model.DebrisLevel) string {
	switch d {
	case model.DebrisHigh:
		return t.DebrisHigh
	case model.DebrisMedium:
		return t.DebrisMedium
	default:
		return t.DebrisLow
	}
}

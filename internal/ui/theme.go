package ui

import (
	"strings"

	"github.com/idilsaglam/prioritodo/internal/model"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	High, Medium, Low                             string
	BoxUnchecked, BoxChecked                      string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymDone, SymUnchecked, SymTrophy              string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			High: "\033[91m", Medium: "\033[93m", Low: "\033[96m",
			BoxUnchecked: "◻", BoxChecked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDone: "✔", SymUnchecked: "•", SymTrophy: "🏆",
		}
	case "mono":
		disableColor = true
		current = Theme{
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDone: "x", SymUnchecked: "-", SymTrophy: "*",
		}
	default: // classic
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Pending: fgYellow,
			High: fgRed, Medium: fgYellow, Low: fgBlue,
			BoxUnchecked: "☐", BoxChecked: "☑",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymDone: "✔", SymUnchecked: "•", SymTrophy: "🏆",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }

// PriorityBadge renders a fixed-width, coloured priority label.
func PriorityBadge(p model.Priority) string {
	label := strings.ToUpper(p.String())
	color := current.Muted
	switch p {
	case model.PriorityHigh:
		color = current.High
	case model.PriorityMedium:
		color = current.Medium
	case model.PriorityLow:
		color = current.Low
	}
	return C(color, "["+label+"]"+strings.Repeat(" ", max(0, 6-len(label))))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/prioritodo/internal/model"
	"github.com/idilsaglam/prioritodo/internal/view"
)

// ------- styling helpers (Lip Gloss) -------
var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	celebrateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	badgeStyle  = lipgloss.NewStyle().Bold(true).Width(8)
	highStyle   = badgeStyle.Foreground(lipgloss.Color("196"))
	mediumStyle = badgeStyle.Foreground(lipgloss.Color("214"))
	lowStyle    = badgeStyle.Foreground(lipgloss.Color("39"))

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

func priorityBadge(p model.Priority) string {
	label := strings.ToUpper(p.String())
	switch p {
	case model.PriorityHigh:
		return highStyle.Render(label)
	case model.PriorityMedium:
		return mediumStyle.Render(label)
	case model.PriorityLow:
		return lowStyle.Render(label)
	}
	return badgeStyle.Render(label)
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

func progressBar(p view.Progress, width int) string {
	if width <= 0 {
		width = 28
	}
	filled := p.Percent * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if p.AllComplete {
		bar = successStyle.Render(bar)
	}
	return "[" + bar + fmt.Sprintf("] %d%% %d/%d", p.Percent, p.CompletedCount, p.TotalCount)
}

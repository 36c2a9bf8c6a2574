package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Makepad-fr/shoresquad/internal/model"
	"github.com/Makepad-fr/shoresquad/internal/squad"
	"github.com/Makepad-fr/shoresquad/internal/ui"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#27AE60"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F39C12"))
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))

	statNumberStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0B7FB8"))
	cardStyle       = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Align(lipgloss.Center)
)

// applyTheme carries the CLI theme into the TUI. Without color everything
// renders through the ASCII profile.
func applyTheme(t ui.Theme, color bool) {
	if !color || t.Name == "mono" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	switch t.Name {
	case "neon":
		titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	default:
		titleStyle = lipgloss.NewStyle().Bold(true)
		accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	}
}

var statLabels = [4]string{"Cleanups", "Impact", "Members", "Beaches"}

var notifyColors = map[squad.Kind]string{
	squad.KindSuccess: "#27AE60",
	squad.KindError:   "#E74C3C",
	squad.KindWarning: "#F39C12",
	squad.KindInfo:    "#0B7FB8",
}

func notificationStyle(k squad.Kind) lipgloss.Style {
	c, ok := notifyColors[k]
	if !ok {
		c = notifyColors[squad.KindInfo]
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(c)).
		Padding(0, 1)
}

func priorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return highStyle
	case model.PriorityMedium:
		return mediumStyle
	default:
		return lowStyle
	}
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

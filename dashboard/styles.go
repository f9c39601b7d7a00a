package dashboard

import (
	"shopfloor/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("255"))

	activeFilterStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170")).
				Underline(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyles = map[domain.Status]lipgloss.Style{
		domain.StatusPlanned:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		domain.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		domain.StatusPaused:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		domain.StatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		domain.StatusOnHold:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
	}
)

func renderStatus(s domain.Status, width int) string {
	text := padRight(string(s), width)
	if style, found := statusStyles[s]; found {
		return style.Render(text)
	}
	return text
}

package menu

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Option   lipgloss.Style
	Success  lipgloss.Style
	Declined lipgloss.Style
	Warning  lipgloss.Style
}

// NewTheme builds the styles against r, so output that is not a terminal stays plain text
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Option:   r.NewStyle().Faint(true),
		Success:  r.NewStyle().Foreground(lipgloss.Color("42")),
		Declined: r.NewStyle().Foreground(lipgloss.Color("203")),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

package shell

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

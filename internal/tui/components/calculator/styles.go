package calculator

import "github.com/charmbracelet/lipgloss"

// Styles defines the visual styling for the calculator component
type Styles struct {
	Title       lipgloss.Style
	StageLabel  lipgloss.Style
	ActiveLabel lipgloss.Style
	FieldLabel  lipgloss.Style
	Result      lipgloss.Style
	Error       lipgloss.Style
	Dim         lipgloss.Style
}

// DefaultStyles returns the default styles for the calculator component
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		StageLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		ActiveLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		FieldLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Result:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

package render

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Name         lipgloss.Style
	Detail       lipgloss.Style
	Warning      lipgloss.Style
	Good         lipgloss.Style
	Section      lipgloss.Style
	Empty        lipgloss.Style
	Key          lipgloss.Style
	Meta         lipgloss.Style
	BarBracket   lipgloss.Style
	BarFill      lipgloss.Style
	BarOver      lipgloss.Style
	BarEmpty     lipgloss.Style
	BarBurn      lipgloss.Style
	BarVolume    lipgloss.Style
	BarTextFaint lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Name:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		Detail:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Warning:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Good:         lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Section:      lipgloss.NewStyle().MarginTop(1),
		Empty:        lipgloss.NewStyle().Faint(true),
		Key:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Meta:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		BarBracket:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		BarFill:      lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
		BarOver:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		BarEmpty:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		BarBurn:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		BarVolume:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		BarTextFaint: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

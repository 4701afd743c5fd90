package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Header    lipgloss.Style
	Title     lipgloss.Style
	Present   lipgloss.Style
	Absent    lipgloss.Style
	Cursor    lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Input     lipgloss.Style
	Error     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Present:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Absent:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Present:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Absent:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	},
}

// themeOrder fixes the cycling order for the theme toggle key.
var themeOrder = []string{"default", "dracula"}

func nextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

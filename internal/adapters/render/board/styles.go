package board

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	card      lipgloss.Style
	mapName   lipgloss.Style
	slot      lipgloss.Style
	slotEmpty lipgloss.Style
	role      lipgloss.Style
	count     lipgloss.Style
	duplicate lipgloss.Style
	missing   lipgloss.Style
	section   lipgloss.Style
	player    lipgloss.Style
	empty     lipgloss.Style
	url       lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		mapName:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		slot:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		slotEmpty: lipgloss.NewStyle().Faint(true),
		role:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		count:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		duplicate: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		missing:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		player:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(10),
		empty:     lipgloss.NewStyle().Faint(true).Italic(true),
		url:       lipgloss.NewStyle().Foreground(lipgloss.Color("159")).Underline(true),
	}
}

package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/velolib/valolab/internal/application"
	"github.com/velolib/valolab/internal/domain"
)

type RenderOptions struct {
	// Columns is the number of map cards per row; zero means three.
	Columns int
	// OnlySelected hides maps with no agents.
	OnlySelected bool
}

const defaultColumns = 3

func renderView(view application.BoardView, opts RenderOptions, s styles) string {
	selected := 0
	for _, m := range view.Maps {
		if m.Selected > 0 {
			selected++
		}
	}

	lines := []string{
		s.title.Render("valolab compositions"),
		s.header.Render(fmt.Sprintf("maps with agents: %d/%d", selected, len(view.Maps))),
	}
	if view.URL != "" {
		lines = append(lines, s.url.Render(view.URL))
	}

	lines = append(lines, s.section.Render(renderGrid(view.Maps, opts, s)))
	lines = append(lines, s.section.Render(renderPlayerPool(view.Players, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGrid(maps []application.MapSummary, opts RenderOptions, s styles) string {
	columns := opts.Columns
	if columns <= 0 {
		columns = defaultColumns
	}

	cards := make([]string, 0, len(maps))
	for _, m := range maps {
		if opts.OnlySelected && m.Selected == 0 {
			continue
		}
		cards = append(cards, renderCard(m, s))
	}
	if len(cards) == 0 {
		return s.empty.Render("No agents selected.")
	}

	rows := make([]string, 0, (len(cards)+columns-1)/columns)
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(m application.MapSummary, s styles) string {
	parts := []string{s.mapName.Render(m.Map.Name)}

	for i, agent := range m.Slots {
		label := fmt.Sprintf("%d ", i+1)
		if agent == nil {
			parts = append(parts, label+s.slotEmpty.Render("-"))
			continue
		}
		parts = append(parts, label+s.slot.Render(agent.Name)+" "+s.role.Render(roleTag(agent.Role)))
	}

	parts = append(parts, s.count.Render(fmt.Sprintf("%d/%d agents selected", m.Selected, domain.SlotsPerMap)))
	if analysis := roleAnalysis(m, s); analysis != "" {
		parts = append(parts, analysis)
	}

	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func roleAnalysis(m application.MapSummary, s styles) string {
	items := make([]string, 0, len(m.DuplicateRoles)+len(m.MissingRoles))
	for _, dup := range m.DuplicateRoles {
		items = append(items, s.duplicate.Render(fmt.Sprintf("%dx %s", dup.Count, dup.Role)))
	}
	for _, role := range m.MissingRoles {
		items = append(items, s.missing.Render("no "+string(role)))
	}
	return strings.Join(items, " ")
}

func renderPlayerPool(players []application.PlayerAgents, s styles) string {
	lines := []string{s.title.Render("Player Agent Pool")}
	for _, p := range players {
		label := s.player.Render(fmt.Sprintf("Player %d", p.Player))
		if len(p.Agents) == 0 {
			lines = append(lines, label+s.empty.Render("No agents assigned"))
			continue
		}

		names := make([]string, 0, len(p.Agents))
		for _, agent := range p.Agents {
			names = append(names, agent.Name)
		}
		lines = append(lines, label+s.slot.Render(strings.Join(names, ", ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func roleTag(role domain.Role) string {
	switch role {
	case domain.RoleDuelist:
		return "[D]"
	case domain.RoleController:
		return "[C]"
	case domain.RoleInitiator:
		return "[I]"
	case domain.RoleSentinel:
		return "[S]"
	default:
		return "[?]"
	}
}

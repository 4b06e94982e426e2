package application

import (
	"fmt"

	"github.com/velolib/valolab/internal/domain"
)

type RoleCount struct {
	Role  domain.Role
	Count int
}

type MapSummary struct {
	Map            domain.Map
	Slots          [domain.SlotsPerMap]*domain.Agent
	Selected       int
	DuplicateRoles []RoleCount
	MissingRoles   []domain.Role
}

type PlayerAgents struct {
	Player int
	Agents []domain.Agent
}

type BoardView struct {
	URL     string
	Maps    []MapSummary
	Players []PlayerAgents
}

func (b *Board) MapSummary(mapID domain.MapID) (MapSummary, error) {
	i, ok := b.catalog.MapIndex(mapID)
	if !ok {
		return MapSummary{}, fmt.Errorf("%w: %q", domain.ErrUnknownMap, mapID)
	}

	return b.summarize(b.catalog.MapAt(i)), nil
}

func (b *Board) summarize(m domain.Map) MapSummary {
	summary := MapSummary{Map: m}
	counts := make(map[domain.Role]int, len(domain.Roles))

	for slot, id := range b.compositions.Get(m.ID) {
		if id == domain.EmptySlot {
			continue
		}
		agent, ok := b.catalog.Agent(id)
		if !ok {
			continue
		}
		summary.Slots[slot] = &agent
		summary.Selected++
		counts[agent.Role]++
	}

	for _, role := range domain.Roles {
		switch n := counts[role]; {
		case n >= 2:
			summary.DuplicateRoles = append(summary.DuplicateRoles, RoleCount{Role: role, Count: n})
		case n == 0:
			summary.MissingRoles = append(summary.MissingRoles, role)
		}
	}

	return summary
}

// PlayerPool collects, for each player slot, the distinct agents assigned to
// it across all maps in catalog order.
func (b *Board) PlayerPool() []PlayerAgents {
	pool := make([]PlayerAgents, domain.SlotsPerMap)
	seen := make([]map[domain.AgentID]struct{}, domain.SlotsPerMap)
	for i := range pool {
		pool[i].Player = i + 1
		seen[i] = map[domain.AgentID]struct{}{}
	}

	for _, m := range b.catalog.Maps() {
		for slot, id := range b.compositions.Get(m.ID) {
			if id == domain.EmptySlot {
				continue
			}
			if _, ok := seen[slot][id]; ok {
				continue
			}
			agent, ok := b.catalog.Agent(id)
			if !ok {
				continue
			}
			seen[slot][id] = struct{}{}
			pool[slot].Agents = append(pool[slot].Agents, agent)
		}
	}

	return pool
}

func (b *Board) View() BoardView {
	maps := b.catalog.Maps()
	view := BoardView{
		URL:     b.URL(),
		Maps:    make([]MapSummary, 0, len(maps)),
		Players: b.PlayerPool(),
	}
	for _, m := range maps {
		view.Maps = append(view.Maps, b.summarize(m))
	}
	return view
}

package application

import (
	"fmt"
	"strings"

	"github.com/velolib/valolab/internal/domain"
)

// SelectableAgents lists the agents that can go into slot: every agent not
// already used in another slot of the same map, narrowed by a
// case-insensitive filter on id or name.
func (b *Board) SelectableAgents(mapID domain.MapID, slot int, filter string) ([]domain.Agent, error) {
	if err := b.validateSlot(mapID, slot); err != nil {
		return nil, err
	}

	comp := b.compositions.Get(mapID)
	needle := strings.ToLower(strings.TrimSpace(filter))

	agents := make([]domain.Agent, 0, b.catalog.AgentCount())
	for _, agent := range b.catalog.Agents() {
		if used := comp.SlotOf(agent.ID); used != -1 && used != slot {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(string(agent.ID)), needle) &&
			!strings.Contains(strings.ToLower(agent.Name), needle) {
			continue
		}
		agents = append(agents, agent)
	}

	return agents, nil
}

// SelectAgent is SetSlot with the one-agent-per-map rule applied.
func (b *Board) SelectAgent(mapID domain.MapID, slot int, agent domain.AgentID) error {
	if err := b.validateSlot(mapID, slot); err != nil {
		return err
	}

	if used := b.compositions.Get(mapID).SlotOf(agent); used != -1 && used != slot {
		return fmt.Errorf("%w: %q is in slot %d", domain.ErrAgentAlreadySelected, agent, used+1)
	}

	return b.SetSlot(mapID, slot, agent)
}

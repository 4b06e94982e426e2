package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velolib/valolab/internal/domain"
)

func agentIDs(agents []domain.Agent) []domain.AgentID {
	ids := make([]domain.AgentID, 0, len(agents))
	for _, agent := range agents {
		ids = append(ids, agent.ID)
	}
	return ids
}

func TestSelectableAgentsExcludesOtherSlots(t *testing.T) {
	t.Parallel()

	board, _ := newBoard(t, "https://valolab.app/")
	require.NoError(t, board.SetSlot("Ascent", 0, "jett"))
	require.NoError(t, board.SetSlot("Ascent", 1, "sova"))

	agents, err := board.SelectableAgents("Ascent", 1, "")
	require.NoError(t, err)

	ids := agentIDs(agents)
	assert.Len(t, ids, 27)
	assert.NotContains(t, ids, domain.AgentID("jett"))
	assert.Contains(t, ids, domain.AgentID("sova"))

	other, err := board.SelectableAgents("Bind", 0, "")
	require.NoError(t, err)
	assert.Len(t, other, 28)
}

func TestSelectableAgentsFilter(t *testing.T) {
	t.Parallel()

	board, _ := newBoard(t, "https://valolab.app/")

	agents, err := board.SelectableAgents("Ascent", 0, "  KAY ")
	require.NoError(t, err)
	assert.Equal(t, []domain.AgentID{"kayo"}, agentIDs(agents))

	agents, err = board.SelectableAgents("Ascent", 0, "ra")
	require.NoError(t, err)
	assert.Equal(t, []domain.AgentID{"astra", "raze"}, agentIDs(agents))

	_, err = board.SelectableAgents("Ascent", 7, "")
	assert.ErrorIs(t, err, domain.ErrSlotOutOfRange)
}

func TestSelectAgentRejectsDuplicates(t *testing.T) {
	t.Parallel()

	board, _ := newBoard(t, "https://valolab.app/")
	require.NoError(t, board.SelectAgent("Ascent", 0, "jett"))

	err := board.SelectAgent("Ascent", 3, "jett")
	assert.ErrorIs(t, err, domain.ErrAgentAlreadySelected)
	assert.ErrorContains(t, err, "slot 1")

	require.NoError(t, board.SelectAgent("Ascent", 0, "jett"))
	require.NoError(t, board.SelectAgent("Bind", 0, "jett"))
	require.NoError(t, board.SelectAgent("Ascent", 3, domain.EmptySlot))

	assert.Equal(t, domain.Compositions{
		"Ascent": {"jett"},
		"Bind":   {"jett"},
	}, board.Compositions())
}

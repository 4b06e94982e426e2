package domain

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrder(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()

	require.Equal(t, 12, catalog.MapCount())
	require.Equal(t, 28, catalog.AgentCount())
	assert.Equal(t, MapID("Ascent"), catalog.MapAt(0).ID)
	assert.Equal(t, MapID("Corrode"), catalog.MapAt(11).ID)
	assert.Equal(t, AgentID("astra"), catalog.AgentAt(0).ID)
	assert.Equal(t, AgentID("yoru"), catalog.AgentAt(27).ID)

	kayo, ok := catalog.Agent("kayo")
	require.True(t, ok)
	assert.Equal(t, "KAY/O", kayo.Name)
	assert.Equal(t, RoleInitiator, kayo.Role)
	assert.Equal(t, "agents/kayo.webp", kayo.Icon)
}

func TestNewCatalogValidation(t *testing.T) {
	t.Parallel()

	tooMany := make([]Agent, MaxCatalogSize+1)
	for i := range tooMany {
		tooMany[i] = Agent{ID: AgentID(fmt.Sprintf("agent-%d", i)), Role: RoleDuelist}
	}

	tests := []struct {
		name    string
		maps    []Map
		agents  []Agent
		wantErr error
	}{
		{
			name:   "valid",
			maps:   []Map{{ID: "Ascent"}},
			agents: []Agent{{ID: "jett", Role: RoleDuelist}},
		},
		{
			name:    "duplicate map",
			maps:    []Map{{ID: "Ascent"}, {ID: "Ascent"}},
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "empty agent id",
			maps:    []Map{{ID: "Ascent"}},
			agents:  []Agent{{ID: " ", Role: RoleDuelist}},
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "unknown role",
			agents:  []Agent{{ID: "jett", Role: "support"}},
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "too many agents",
			agents:  tooMany,
			wantErr: ErrCatalogTooLarge,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewCatalog(tc.maps, tc.agents)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewCatalogDefaultsNamesToIDs(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog([]Map{{ID: "Ascent"}}, []Agent{{ID: "jett", Role: RoleDuelist}})
	require.NoError(t, err)

	assert.Equal(t, "Ascent", catalog.MapAt(0).Name)
	assert.Equal(t, "jett", catalog.AgentAt(0).Name)
}

func TestCatalogLookupIgnoresCase(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()

	m, ok := catalog.LookupMap("ascent")
	require.True(t, ok)
	assert.Equal(t, MapID("Ascent"), m.ID)

	a, ok := catalog.LookupAgent("kay/o")
	require.True(t, ok)
	assert.Equal(t, AgentID("kayo"), a.ID)

	_, ok = catalog.LookupAgent("tracer")
	assert.False(t, ok)
}

func TestCompositionsEqualTreatsAllEmptyAsAbsent(t *testing.T) {
	t.Parallel()

	a := Compositions{"Ascent": {"jett"}, "Bind": {}}
	b := Compositions{"Ascent": {"jett"}}

	assert.True(t, a.Equal(b))
	assert.Len(t, a.Normalize(), 1)
	assert.False(t, a.Equal(Compositions{}))
}

func TestCompositionJSONUsesNullForEmptySlots(t *testing.T) {
	t.Parallel()

	comp := Composition{"astra", EmptySlot, "yoru"}

	data, err := json.Marshal(comp)
	require.NoError(t, err)
	assert.JSONEq(t, `["astra", null, "yoru", null, null]`, string(data))

	var decoded Composition
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, comp, decoded)

	assert.Error(t, json.Unmarshal([]byte(`["astra"]`), &decoded))
}

func TestCompositionHelpers(t *testing.T) {
	t.Parallel()

	comp := Composition{"astra", EmptySlot, "yoru"}

	assert.Equal(t, 2, comp.Filled())
	assert.Equal(t, 2, comp.SlotOf("yoru"))
	assert.Equal(t, -1, comp.SlotOf("jett"))
	assert.Equal(t, -1, comp.SlotOf(EmptySlot))
	assert.True(t, Composition{}.IsEmpty())
}

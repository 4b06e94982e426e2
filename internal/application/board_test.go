package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/velolib/valolab/internal/adapters/location/address"
	"github.com/velolib/valolab/internal/codec"
	"github.com/velolib/valolab/internal/domain"
	"github.com/velolib/valolab/internal/ports/mocks"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const ascentAstraYoruCode = "ExwALf6AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=="

func newBoard(t *testing.T, rawURL string, opts ...BoardOption) (*Board, *address.Bar) {
	t.Helper()

	bar, err := address.New(rawURL)
	require.NoError(t, err)

	catalog := domain.DefaultCatalog()
	return NewBoard(catalog, codec.New(catalog), bar, zap.NewNop(), opts...), bar
}

func TestBoardLoadFromLocationAbsent(t *testing.T) {
	t.Parallel()

	board, _ := newBoard(t, "https://valolab.app/")

	assert.Equal(t, LoadAbsent, board.LoadFromLocation())
	assert.Empty(t, board.Compositions())
}

func TestBoardLoadFromLocationDecodes(t *testing.T) {
	t.Parallel()

	board, bar := newBoard(t, "https://valolab.app/?c="+ascentAstraYoruCode)

	assert.Equal(t, LoadDecoded, board.LoadFromLocation())
	assert.Equal(t, domain.Compositions{"Ascent": {"astra", domain.EmptySlot, "yoru"}}, board.Compositions())
	assert.Equal(t, "https://valolab.app/?c="+ascentAstraYoruCode, bar.String())
}

func TestBoardLoadFromLocationMalformedIsLoggedAndEmpty(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	bar, err := address.New("https://valolab.app/?c=not-valid-base64!!")
	require.NoError(t, err)

	catalog := domain.DefaultCatalog()
	board := NewBoard(catalog, codec.New(catalog), bar, zap.New(core))

	assert.Equal(t, LoadMalformed, board.LoadFromLocation())
	assert.Empty(t, board.Compositions())

	entries := logs.FilterMessage("failed to decode compositions").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "not-valid-base64!!", entries[0].ContextMap()["code"])
}

func TestBoardSetSlotPublishesEncodedState(t *testing.T) {
	t.Parallel()

	board, bar := newBoard(t, "https://valolab.app/?c=stale&x=1#frag")

	require.NoError(t, board.SetSlot("Ascent", 0, "astra"))
	require.NoError(t, board.SetSlot("Ascent", 2, "yoru"))

	assert.Equal(t, "https://valolab.app/?c=ExwALf6AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA%3D%3D", bar.String())

	code, ok := bar.Query(QueryParam)
	require.True(t, ok)
	assert.Equal(t, ascentAstraYoruCode, code)
}

func TestBoardStateSurvivesReloadFromPublishedURL(t *testing.T) {
	t.Parallel()

	board, bar := newBoard(t, "https://valolab.app/")
	require.NoError(t, board.SetSlot("Split", 1, "cypher"))
	require.NoError(t, board.SetSlot("Split", 3, "kayo"))
	require.NoError(t, board.SetSlot("Corrode", 4, "waylay"))

	reloaded, _ := newBoard(t, bar.String())
	assert.Equal(t, LoadDecoded, reloaded.LoadFromLocation())
	assert.Equal(t, board.Compositions(), reloaded.Compositions())
}

func TestBoardSetSlotDoesNotEnforceUniqueness(t *testing.T) {
	t.Parallel()

	board, _ := newBoard(t, "https://valolab.app/")

	require.NoError(t, board.SetSlot("Bind", 0, "jett"))
	require.NoError(t, board.SetSlot("Bind", 1, "jett"))
	assert.Equal(t, domain.Composition{"jett", "jett"}, board.Compositions()["Bind"])
}

func TestBoardSetSlotValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mapID   domain.MapID
		slot    int
		agent   domain.AgentID
		wantErr error
	}{
		{name: "unknown map", mapID: "Dust2", slot: 0, agent: "jett", wantErr: domain.ErrUnknownMap},
		{name: "negative slot", mapID: "Ascent", slot: -1, agent: "jett", wantErr: domain.ErrSlotOutOfRange},
		{name: "slot too large", mapID: "Ascent", slot: 5, agent: "jett", wantErr: domain.ErrSlotOutOfRange},
		{name: "unknown agent", mapID: "Ascent", slot: 0, agent: "tracer", wantErr: domain.ErrUnknownAgent},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			board, bar := newBoard(t, "https://valolab.app/")
			err := board.SetSlot(tc.mapID, tc.slot, tc.agent)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, board.Compositions())
			assert.Equal(t, "https://valolab.app/", bar.String())
		})
	}
}

func TestBoardClearingLastSlotDropsMap(t *testing.T) {
	t.Parallel()

	board, _ := newBoard(t, "https://valolab.app/")
	require.NoError(t, board.SetSlot("Haven", 2, "sage"))
	require.NoError(t, board.SetSlot("Haven", 2, domain.EmptySlot))

	assert.Empty(t, board.Compositions())
}

func TestBoardResetMapAndResetAll(t *testing.T) {
	t.Parallel()

	board, bar := newBoard(t, "https://valolab.app/")
	require.NoError(t, board.SetSlot("Ascent", 0, "astra"))
	require.NoError(t, board.SetSlot("Ascent", 2, "yoru"))
	require.NoError(t, board.SetSlot("Bind", 0, "jett"))

	require.NoError(t, board.ResetMap("Bind"))
	assert.Equal(t, domain.Compositions{"Ascent": {"astra", domain.EmptySlot, "yoru"}}, board.Compositions())
	code, _ := bar.Query(QueryParam)
	assert.Equal(t, ascentAstraYoruCode, code)

	assert.ErrorIs(t, board.ResetMap("Dust2"), domain.ErrUnknownMap)

	require.NoError(t, board.ResetAll())
	assert.Empty(t, board.Compositions())
	code, _ = bar.Query(QueryParam)
	decoded, err := codec.New(domain.DefaultCatalog()).Decode(code)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestBoardCompositionsReturnsCopy(t *testing.T) {
	t.Parallel()

	board, _ := newBoard(t, "https://valolab.app/")
	require.NoError(t, board.SetSlot("Ascent", 0, "astra"))

	snapshot := board.Compositions()
	snapshot["Ascent"] = domain.Composition{"jett"}
	delete(snapshot, "Ascent")

	assert.Equal(t, domain.Composition{"astra"}, board.Compositions()["Ascent"])
}

func TestBoardEncodeUnavailableLeavesLocationUntouched(t *testing.T) {
	t.Parallel()

	location := mocks.NewMockLocation(t)
	core, logs := observer.New(zapcore.WarnLevel)
	catalog := domain.DefaultCatalog()
	board := NewBoard(catalog, codec.New(catalog, codec.WithTextEncoding(nil)), location, zap.New(core))

	require.NoError(t, board.SetSlot("Ascent", 0, "jett"))
	assert.Equal(t, domain.Composition{"jett"}, board.Compositions()["Ascent"])
	location.AssertNotCalled(t, "ReplaceQuery", mock.Anything, mock.Anything)
	assert.Equal(t, 1, logs.FilterMessage("skipping location update").Len())
}

func TestBoardPublishFailureIsReturned(t *testing.T) {
	t.Parallel()

	location := mocks.NewMockLocation(t)
	replaceErr := errors.New("history locked")
	location.EXPECT().ReplaceQuery(QueryParam, mock.AnythingOfType("string")).Return(replaceErr)

	catalog := domain.DefaultCatalog()
	board := NewBoard(catalog, codec.New(catalog), location, nil)

	err := board.SetSlot("Ascent", 0, "jett")
	assert.ErrorIs(t, err, replaceErr)
}

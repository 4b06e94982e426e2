package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsRelativeAndEmptyURLs(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "  ", "/?c=abc", "valolab.app", "http://[::1"} {
		_, err := New(raw)
		assert.ErrorIs(t, err, ErrInvalidURL, raw)
	}
}

func TestQueryReadsFirstValue(t *testing.T) {
	t.Parallel()

	bar, err := New("https://valolab.app/?c=Exw+A==&c=other")
	require.NoError(t, err)

	value, ok := bar.Query("c")
	require.True(t, ok)
	assert.Equal(t, "Exw A==", value)

	_, ok = bar.Query("missing")
	assert.False(t, ok)
}

func TestReplaceQueryRewritesInPlace(t *testing.T) {
	t.Parallel()

	bar, err := New("https://valolab.app/teams?foo=bar#top")
	require.NoError(t, err)

	require.NoError(t, bar.ReplaceQuery("c", "ExwAAT+AAA=="))
	assert.Equal(t, "https://valolab.app/teams?c=ExwAAT%2BAAA%3D%3D", bar.String())

	value, ok := bar.Query("c")
	require.True(t, ok)
	assert.Equal(t, "ExwAAT+AAA==", value)

	require.NoError(t, bar.ReplaceQuery("c", "AAAA"))
	assert.Equal(t, "https://valolab.app/teams?c=AAAA", bar.String())

	assert.Error(t, bar.ReplaceQuery("", "x"))
}

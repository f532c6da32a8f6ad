package recommendations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveAppliesDefaults(t *testing.T) {
	prefs := PreferencesPayload{}.Resolve()
	require.Equal(t, defaultMaxResults, prefs.MaxResults)
	require.Equal(t, defaultMinScore, prefs.MinScore)
	require.False(t, prefs.DubaiFocus)
	require.True(t, prefs.IncludeMutualConnections)
	require.False(t, prefs.PrioritizeActiveUsers)
}

func TestResolveClampsOutOfRangeValues(t *testing.T) {
	big := 9000
	negative := -1
	badScore := 1.5
	zeroScore := 0.0

	prefs := PreferencesPayload{MaxResults: &big, MinScore: &badScore}.Resolve()
	require.Equal(t, maxMaxResults, prefs.MaxResults)
	require.Equal(t, defaultMinScore, prefs.MinScore)

	prefs = PreferencesPayload{MaxResults: &negative}.Resolve()
	require.Equal(t, defaultMaxResults, prefs.MaxResults)

	// Explicit zero is a valid floor, distinct from "absent".
	prefs = PreferencesPayload{MinScore: &zeroScore}.Resolve()
	require.Equal(t, 0.0, prefs.MinScore)
}

func TestParseMatchType(t *testing.T) {
	for _, valid := range []string{"industry", "location", "skills", "goals", "general"} {
		parsed, ok := ParseMatchType(valid)
		require.True(t, ok)
		require.Equal(t, MatchType(valid), parsed)
	}

	_, ok := ParseMatchType("astrology")
	require.False(t, ok)
	_, ok = ParseMatchType("")
	require.False(t, ok)
}

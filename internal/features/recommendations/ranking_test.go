package recommendations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func result(userID string, score float64, matchType MatchType) MatchResult {
	return MatchResult{
		UserID:    userID,
		Score:     score,
		MatchType: matchType,
		User:      CandidateUser{ID: userID},
	}
}

func TestRankSortsByScoreDescending(t *testing.T) {
	results := []MatchResult{
		result("a", 0.4, MatchTypeGeneral),
		result("b", 0.9, MatchTypeGeneral),
		result("c", 0.6, MatchTypeGeneral),
	}

	ranked := Rank(results, RankOptions{MaxResults: 10})
	require.Equal(t, []string{"b", "c", "a"}, ids(ranked))
}

func TestRankBreaksScoreTiesByUserIDAscending(t *testing.T) {
	results := []MatchResult{
		result("ccc", 0.5, MatchTypeGeneral),
		result("aaa", 0.5, MatchTypeGeneral),
		result("bbb", 0.5, MatchTypeGeneral),
	}

	ranked := Rank(results, RankOptions{MaxResults: 10})
	require.Equal(t, []string{"aaa", "bbb", "ccc"}, ids(ranked))
}

func TestRankAppliesMinScoreInclusive(t *testing.T) {
	results := []MatchResult{
		result("a", 0.29, MatchTypeGeneral),
		result("b", 0.3, MatchTypeGeneral),
		result("c", 0.31, MatchTypeGeneral),
	}

	ranked := Rank(results, RankOptions{MinScore: 0.3, MaxResults: 10})
	require.Equal(t, []string{"c", "b"}, ids(ranked))
}

func TestRankTruncatesToMaxResults(t *testing.T) {
	results := []MatchResult{
		result("a", 0.9, MatchTypeGeneral),
		result("b", 0.8, MatchTypeGeneral),
		result("c", 0.7, MatchTypeGeneral),
	}

	ranked := Rank(results, RankOptions{MaxResults: 2})
	require.Equal(t, []string{"a", "b"}, ids(ranked))
}

func TestRankFiltersByMatchType(t *testing.T) {
	results := []MatchResult{
		result("a", 0.9, MatchTypeIndustry),
		result("b", 0.8, MatchTypeLocation),
		result("c", 0.7, MatchTypeIndustry),
	}

	ranked := Rank(results, RankOptions{MaxResults: 10, MatchType: MatchTypeIndustry})
	require.Equal(t, []string{"a", "c"}, ids(ranked))
}

func TestRankFiltersByLocationAndIndustry(t *testing.T) {
	a := result("a", 0.9, MatchTypeGeneral)
	a.location = "Dubai, UAE"
	a.industry = "Technology"
	b := result("b", 0.8, MatchTypeGeneral)
	b.location = "Berlin, Germany"
	b.industry = "Finance"

	ranked := Rank([]MatchResult{a, b}, RankOptions{MaxResults: 10, Location: "dubai"})
	require.Equal(t, []string{"a"}, ids(ranked))

	ranked = Rank([]MatchResult{a, b}, RankOptions{MaxResults: 10, Industry: "FINANCE"})
	require.Equal(t, []string{"b"}, ids(ranked))
}

func TestRankDeterministicRegardlessOfInputOrder(t *testing.T) {
	forward := []MatchResult{
		result("a", 0.5, MatchTypeGeneral),
		result("b", 0.5, MatchTypeGeneral),
		result("c", 0.9, MatchTypeGeneral),
	}
	reversed := []MatchResult{forward[2], forward[1], forward[0]}

	opts := RankOptions{MaxResults: 10}
	require.Equal(t, ids(Rank(forward, opts)), ids(Rank(reversed, opts)))
}

func ids(results []MatchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.UserID
	}
	return out
}

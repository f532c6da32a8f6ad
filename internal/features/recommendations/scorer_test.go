package recommendations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamzarauf/linkora/internal/features/auth"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestScorer() *Scorer {
	s := NewScorer(WeightsV1)
	s.now = func() time.Time { return testNow }
	return s
}

func testUser(hexID string, mutate func(*auth.User)) *auth.User {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		panic(err)
	}
	u := &auth.User{
		ID:              id,
		Name:            "Test User " + hexID[len(hexID)-4:],
		Email:           "user-" + hexID[len(hexID)-4:] + "@example.com",
		Headline:        "Engineer",
		Bio:             "Building things",
		Location:        "Dubai, UAE",
		Industry:        "Technology",
		ExperienceYears: 5,
		LinkedinURL:     "https://linkedin.com/in/test",
		Interests:       []string{"golang", "fintech"},
		Goals:           []string{"mentorship", "hiring"},
		Strengths:       []string{"backend", "leadership"},
		LastActiveAt:    testNow.Add(-2 * time.Hour),
	}
	if mutate != nil {
		mutate(u)
	}
	return u
}

func TestWeightsV1SumToOne(t *testing.T) {
	require.InDelta(t, 1.0, WeightsV1.Sum(), 1e-9)
}

func TestScoreFactorsStayInRange(t *testing.T) {
	scorer := newTestScorer()
	requester := testUser("650000000000000000000001", nil)

	candidates := []Candidate{
		{User: testUser("650000000000000000000002", nil), MutualConnections: 12},
		{User: testUser("650000000000000000000003", func(u *auth.User) {
			// Sparse profile: everything optional missing.
			u.Headline = ""
			u.Bio = ""
			u.Location = ""
			u.Industry = ""
			u.ExperienceYears = 0
			u.LinkedinURL = ""
			u.Interests = nil
			u.Goals = nil
			u.Strengths = nil
			u.LastActiveAt = time.Time{}
		}), MutualConnections: 0},
	}

	for _, cand := range candidates {
		result := scorer.Score(requester, cand, Preferences{IncludeMutualConnections: true, PrioritizeActiveUsers: true, DubaiFocus: true})
		require.GreaterOrEqual(t, result.Score, 0.0)
		require.LessOrEqual(t, result.Score, 1.0)
		for _, name := range factorOrder {
			value := result.Factors.Of(name)
			require.GreaterOrEqual(t, value, 0.0, "factor %s", name)
			require.LessOrEqual(t, value, 1.0, "factor %s", name)
		}
	}
}

func TestScoreIsWeightedSumOfFactors(t *testing.T) {
	scorer := newTestScorer()
	requester := testUser("650000000000000000000001", nil)
	cand := Candidate{User: testUser("650000000000000000000002", nil), MutualConnections: 3}

	result := scorer.Score(requester, cand, Preferences{IncludeMutualConnections: true})

	expected := 0.0
	for _, name := range factorOrder {
		expected += WeightsV1.Of(name) * result.Factors.Of(name)
	}
	require.InDelta(t, expected, result.Score, 1e-9)
}

func TestTagOverlap(t *testing.T) {
	require.Equal(t, 0.0, tagOverlap(nil, []string{"golang"}))
	require.Equal(t, 0.0, tagOverlap([]string{"golang"}, nil))
	require.Equal(t, 1.0, tagOverlap([]string{"golang"}, []string{"Golang"}))
	// {a,b} vs {b,c}: 1 shared, 3 in union
	require.InDelta(t, 1.0/3.0, tagOverlap([]string{"a", "b"}, []string{"b", "c"}), 1e-9)
}

func TestMissingDataScoresNeutral(t *testing.T) {
	scorer := newTestScorer()
	requester := testUser("650000000000000000000001", nil)
	cand := Candidate{User: testUser("650000000000000000000002", func(u *auth.User) {
		u.Interests = nil
		u.Industry = ""
		u.ExperienceYears = 0
		u.LastActiveAt = time.Time{}
	})}

	result := scorer.Score(requester, cand, Preferences{IncludeMutualConnections: true})
	require.Equal(t, 0.0, result.Factors.Interests)
	require.Equal(t, 0.0, result.Factors.Industry)
	require.Equal(t, 0.5, result.Factors.Experience)
	require.Equal(t, 0.5, result.Factors.ActivityLevel)
}

func TestDubaiFocusRanksDubaiCandidatesStrictlyHigher(t *testing.T) {
	scorer := newTestScorer()
	requester := testUser("650000000000000000000001", func(u *auth.User) {
		u.Location = "Berlin, Germany"
	})

	inDubai := Candidate{User: testUser("650000000000000000000002", func(u *auth.User) {
		u.Location = "Dubai, UAE"
	})}
	// Identical profile, perfect location match with the requester but
	// outside the target region.
	elsewhere := Candidate{User: testUser("650000000000000000000003", func(u *auth.User) {
		u.Location = "Berlin, Germany"
	})}

	prefs := Preferences{DubaiFocus: true, IncludeMutualConnections: true}
	dubaiResult := scorer.Score(requester, inDubai, prefs)
	otherResult := scorer.Score(requester, elsewhere, prefs)

	require.Greater(t, dubaiResult.Factors.Location, otherResult.Factors.Location)
	require.Greater(t, dubaiResult.Score, otherResult.Score)
}

func TestScoreExperience(t *testing.T) {
	require.Equal(t, 1.0, scoreExperience(5, 5))
	require.InDelta(t, 0.7, scoreExperience(5, 8), 1e-9)
	require.Equal(t, 0.0, scoreExperience(1, 15))
	require.Equal(t, 0.5, scoreExperience(0, 10))
}

func TestScoreMutualSaturatesAtFive(t *testing.T) {
	require.Equal(t, 0.0, scoreMutual(0, true))
	require.InDelta(t, 0.4, scoreMutual(2, true), 1e-9)
	require.Equal(t, 1.0, scoreMutual(5, true))
	require.Equal(t, 1.0, scoreMutual(50, true))
	// Opt-out zeroes the factor regardless of count.
	require.Equal(t, 0.0, scoreMutual(50, false))
}

func TestScoreActivityDecay(t *testing.T) {
	scorer := newTestScorer()

	require.Equal(t, 1.0, scorer.scoreActivity(testNow.Add(-6*time.Hour), false))
	require.Equal(t, 0.8, scorer.scoreActivity(testNow.Add(-3*24*time.Hour), false))
	require.Equal(t, 0.6, scorer.scoreActivity(testNow.Add(-20*24*time.Hour), false))
	require.Equal(t, 0.3, scorer.scoreActivity(testNow.Add(-60*24*time.Hour), false))
	require.Equal(t, 0.1, scorer.scoreActivity(testNow.Add(-365*24*time.Hour), false))

	// The boost lifts but never exceeds 1.
	require.Equal(t, 0.5, scorer.scoreActivity(testNow.Add(-60*24*time.Hour), true))
	require.Equal(t, 1.0, scorer.scoreActivity(testNow.Add(-6*time.Hour), true))
}

func TestMatchTypeFollowsDominantContribution(t *testing.T) {
	scorer := newTestScorer()
	requester := testUser("650000000000000000000001", func(u *auth.User) {
		u.Interests = nil
		u.Goals = nil
		u.Strengths = nil
		u.Location = "Berlin, Germany"
		u.Industry = "Finance"
	})
	// Only the industry factor fires.
	cand := Candidate{User: testUser("650000000000000000000002", func(u *auth.User) {
		u.Interests = nil
		u.Goals = nil
		u.Strengths = nil
		u.Location = "Tokyo"
		u.Industry = "Finance"
		u.Headline = ""
		u.Bio = ""
		u.LinkedinURL = ""
		u.ExperienceYears = 0
		u.LastActiveAt = time.Time{}
	})}

	result := scorer.Score(requester, cand, Preferences{})
	require.Equal(t, MatchTypeIndustry, result.MatchType)
}

func TestMatchTypeTieBreakPriority(t *testing.T) {
	// Equal weighted contributions resolve by the fixed priority order:
	// industry beats location beats skills beats goals beats general.
	s := &Scorer{weights: Weights{Industry: 0.5, Location: 0.5}, now: func() time.Time { return testNow }}
	require.Equal(t, MatchTypeIndustry, s.matchType(Factors{Industry: 1, Location: 1}))

	s = &Scorer{weights: Weights{Location: 0.5, Interests: 0.5}, now: func() time.Time { return testNow }}
	require.Equal(t, MatchTypeLocation, s.matchType(Factors{Location: 1, Interests: 1}))

	s = &Scorer{weights: Weights{Interests: 0.5, Goals: 0.5}, now: func() time.Time { return testNow }}
	require.Equal(t, MatchTypeSkills, s.matchType(Factors{Interests: 1, Goals: 1}))
}

func TestMatchTypeDefaultsToGeneralWhenNothingContributes(t *testing.T) {
	scorer := newTestScorer()
	require.Equal(t, MatchTypeGeneral, scorer.matchType(Factors{}))
}

func TestReasonsOrderedByContribution(t *testing.T) {
	scorer := newTestScorer()
	requester := testUser("650000000000000000000001", nil)
	cand := Candidate{User: testUser("650000000000000000000002", nil), MutualConnections: 5}

	result := scorer.Score(requester, cand, Preferences{IncludeMutualConnections: true})
	require.NotEmpty(t, result.Reasons)

	// The full profile match makes shared interests the top weighted
	// contributor, so it must lead the explanation.
	require.Equal(t, "Shared interests: fintech, golang", result.Reasons[0])
}

func TestScoreDeterministicAcrossCalls(t *testing.T) {
	scorer := newTestScorer()
	requester := testUser("650000000000000000000001", nil)
	cand := Candidate{User: testUser("650000000000000000000002", nil), MutualConnections: 2}
	prefs := Preferences{IncludeMutualConnections: true, DubaiFocus: true}

	first := scorer.Score(requester, cand, prefs)
	second := scorer.Score(requester, cand, prefs)
	require.Equal(t, first, second)
}

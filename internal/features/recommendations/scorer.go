package recommendations

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/pkg/validator"
)

// Scorer computes match scores between a requester and candidates. It is
// pure: no I/O, no clock reads except through now, so results are
// reproducible in tests.
type Scorer struct {
	weights Weights
	now     func() time.Time
}

// NewScorer creates a scorer with the given weight set
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights, now: time.Now}
}

// Score compares one candidate against the requester and returns the scored,
// explained result. Every sub-score lands in [0,1]; the total is the weighted
// sum, clamped.
func (s *Scorer) Score(requester *auth.User, cand Candidate, prefs Preferences) MatchResult {
	user := cand.User

	factors := Factors{
		Interests:             tagOverlap(requester.Interests, user.Interests),
		Goals:                 tagOverlap(requester.Goals, user.Goals),
		Strengths:             tagOverlap(requester.Strengths, user.Strengths),
		Location:              s.scoreLocation(requester.Location, user.Location, prefs.DubaiFocus),
		Industry:              scoreIndustry(requester.Industry, user.Industry),
		Experience:            scoreExperience(requester.ExperienceYears, user.ExperienceYears),
		MutualConnections:     scoreMutual(cand.MutualConnections, prefs.IncludeMutualConnections),
		ActivityLevel:         s.scoreActivity(user.LastActiveAt, prefs.PrioritizeActiveUsers),
		ProfessionalAlignment: scoreAlignment(requester, user),
		NetworkingPotential:   scoreCompleteness(user),
	}

	score := 0.0
	for _, name := range factorOrder {
		score += s.weights.Of(name) * factors.Of(name)
	}
	score = clamp01(score)

	return MatchResult{
		UserID:    user.ID.Hex(),
		Score:     score,
		Factors:   factors,
		Reasons:   s.reasons(factors, requester, user, cand.MutualConnections),
		MatchType: s.matchType(factors),
		User: CandidateUser{
			ID:           user.ID.Hex(),
			Name:         user.Name,
			Email:        user.Email,
			LinkedinInfo: user.LinkedinURL,
			Goals:        user.Goals,
			Strengths:    user.Strengths,
			Interests:    user.Interests,
		},
		location: user.Location,
		industry: user.Industry,
	}
}

// matchType picks the factor with the largest weighted contribution and maps
// it to its match type. Equal contributions fall back to the fixed priority
// order; remaining ties resolve by factor iteration order.
func (s *Scorer) matchType(factors Factors) MatchType {
	best := FactorNetworkingPotential
	bestContribution := -1.0

	for _, name := range factorOrder {
		contribution := s.weights.Of(name) * factors.Of(name)
		if contribution > bestContribution {
			best = name
			bestContribution = contribution
			continue
		}
		if contribution == bestContribution &&
			matchTypePriority[factorMatchTypes[name]] < matchTypePriority[factorMatchTypes[best]] {
			best = name
		}
	}

	if bestContribution <= 0 {
		return MatchTypeGeneral
	}
	return factorMatchTypes[best]
}

// reasons builds human-readable explanations ordered by descending weighted
// contribution, with a lexical tie-break on factor name. The full list is
// returned; the handler trims it for presentation.
func (s *Scorer) reasons(factors Factors, requester, user *auth.User, mutual int) []string {
	type contribution struct {
		name  FactorName
		value float64
	}

	ranked := make([]contribution, 0, len(factorOrder))
	for _, name := range factorOrder {
		value := s.weights.Of(name) * factors.Of(name)
		if value > 0 {
			ranked = append(ranked, contribution{name: name, value: value})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].value != ranked[j].value {
			return ranked[i].value > ranked[j].value
		}
		return ranked[i].name < ranked[j].name
	})

	reasons := make([]string, 0, len(ranked))
	for _, item := range ranked {
		if text := reasonText(item.name, requester, user, mutual); text != "" {
			reasons = append(reasons, text)
		}
	}
	return reasons
}

func reasonText(name FactorName, requester, user *auth.User, mutual int) string {
	switch name {
	case FactorInterests:
		if shared := sharedTags(requester.Interests, user.Interests); len(shared) > 0 {
			return "Shared interests: " + strings.Join(shared, ", ")
		}
		return "Overlapping interests"
	case FactorGoals:
		if shared := sharedTags(requester.Goals, user.Goals); len(shared) > 0 {
			return "Shared goals: " + strings.Join(shared, ", ")
		}
		return "Similar professional goals"
	case FactorStrengths:
		if shared := sharedTags(requester.Strengths, user.Strengths); len(shared) > 0 {
			return "Shared strengths: " + strings.Join(shared, ", ")
		}
		return "Similar strengths"
	case FactorLocation:
		if user.Location != "" {
			return "Based in " + user.Location
		}
		return "Compatible location"
	case FactorIndustry:
		if user.Industry != "" {
			return "Works in " + user.Industry
		}
		return "Related industry"
	case FactorExperience:
		return "Comparable experience level"
	case FactorMutualConnections:
		if mutual == 1 {
			return "1 mutual connection"
		}
		if mutual > 1 {
			return fmt.Sprintf("%d mutual connections", mutual)
		}
		return ""
	case FactorActivityLevel:
		return "Recently active on the platform"
	case FactorProfessionalAlignment:
		return "Their profile complements your goals"
	case FactorNetworkingPotential:
		return "Well-developed profile"
	}
	return ""
}

// tagOverlap is the Jaccard similarity of two normalized tag sets. Either
// side empty scores 0: absence of data is not a signal of similarity.
func tagOverlap(a, b []string) float64 {
	a = validator.NormalizeTags(a)
	b = validator.NormalizeTags(b)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]bool, len(a))
	for _, tag := range a {
		set[tag] = true
	}

	shared := 0
	for _, tag := range b {
		if set[tag] {
			shared++
		}
	}

	union := len(a) + len(b) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

// sharedTags returns the sorted intersection of two tag sets
func sharedTags(a, b []string) []string {
	a = validator.NormalizeTags(a)
	b = validator.NormalizeTags(b)

	set := make(map[string]bool, len(a))
	for _, tag := range a {
		set[tag] = true
	}

	var shared []string
	for _, tag := range b {
		if set[tag] {
			shared = append(shared, tag)
			set[tag] = false
		}
	}
	sort.Strings(shared)
	return shared
}

// scoreLocation compares locations. With dubaiFocus set, candidates in the
// target region always outscore candidates outside it, whatever the plain
// similarity says.
func (s *Scorer) scoreLocation(requesterLoc, candidateLoc string, dubaiFocus bool) float64 {
	base := locationSimilarity(requesterLoc, candidateLoc)
	if !dubaiFocus {
		return base
	}
	if strings.Contains(strings.ToLower(candidateLoc), dubaiRegion) {
		return 0.7 + 0.3*base
	}
	return 0.3 * base
}

func locationSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0.5
	}
	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.75
	}
	for _, token := range strings.FieldsFunc(a, isLocationSeparator) {
		if token != "" && strings.Contains(b, token) {
			return 0.5
		}
	}
	return 0
}

func isLocationSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '-' || r == '/'
}

func scoreIndustry(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.5
	}
	return 0
}

// scoreExperience rewards nearby experience levels on a ten-year ramp.
// Unknown experience on either side scores neutral.
func scoreExperience(a, b int) float64 {
	if a <= 0 || b <= 0 {
		return 0.5
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return clamp01(1 - float64(diff)/10)
}

// scoreMutual saturates at mutualSaturation shared connections. When the
// requester opts out of the graph signal the factor contributes nothing.
func scoreMutual(count int, include bool) float64 {
	if !include || count <= 0 {
		return 0
	}
	score := float64(count) / mutualSaturation
	return clamp01(score)
}

// scoreActivity decays with time since the candidate was last seen. The
// prioritizeActiveUsers flag adds a flat boost so fresh users float upward.
func (s *Scorer) scoreActivity(lastActive time.Time, prioritize bool) float64 {
	if lastActive.IsZero() {
		return 0.5
	}

	days := s.now().Sub(lastActive).Hours() / 24
	var score float64
	switch {
	case days <= 1:
		score = 1.0
	case days <= 7:
		score = 0.8
	case days <= 30:
		score = 0.6
	case days <= 90:
		score = 0.3
	default:
		score = 0.1
	}

	if prioritize {
		score += 0.2
	}
	return clamp01(score)
}

// scoreAlignment measures how much each side's strengths answer the other
// side's goals, averaged across both directions.
func scoreAlignment(requester, user *auth.User) float64 {
	forward := tagOverlap(requester.Goals, user.Strengths)
	backward := tagOverlap(requester.Strengths, user.Goals)
	return clamp01((forward + backward) / 2)
}

// scoreCompleteness treats a filled-out profile as a proxy for networking
// intent.
func scoreCompleteness(user *auth.User) float64 {
	fields := []bool{
		user.Headline != "",
		user.Bio != "",
		user.Location != "",
		user.Industry != "",
		user.LinkedinURL != "",
		user.ExperienceYears > 0,
		len(user.Interests) > 0,
		len(user.Goals) > 0,
		len(user.Strengths) > 0,
	}

	filled := 0
	for _, present := range fields {
		if present {
			filled++
		}
	}
	return float64(filled) / float64(len(fields))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

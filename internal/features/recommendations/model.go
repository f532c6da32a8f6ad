package recommendations

import (
	"github.com/hamzarauf/linkora/internal/features/auth"
)

// MatchType labels the dominant factor of a match. Closed set; parsed and
// validated at the API boundary.
type MatchType string

const (
	MatchTypeIndustry MatchType = "industry"
	MatchTypeLocation MatchType = "location"
	MatchTypeSkills   MatchType = "skills"
	MatchTypeGoals    MatchType = "goals"
	MatchTypeGeneral  MatchType = "general"
)

// ParseMatchType validates a raw matchType filter value
func ParseMatchType(raw string) (MatchType, bool) {
	switch MatchType(raw) {
	case MatchTypeIndustry, MatchTypeLocation, MatchTypeSkills, MatchTypeGoals, MatchTypeGeneral:
		return MatchType(raw), true
	}
	return "", false
}

// Preferences are the resolved request preferences with defaults applied
type Preferences struct {
	MaxResults               int
	MinScore                 float64
	DubaiFocus               bool
	IncludeMutualConnections bool
	PrioritizeActiveUsers    bool
}

// Preference defaults. Missing or malformed fields never fail a request;
// they fall back to these.
const (
	defaultMaxResults = 10
	maxMaxResults     = 50
	defaultMinScore   = 0.3
)

// PreferencesPayload is the wire shape of request preferences. Pointer
// fields distinguish "absent" from zero values so defaults apply only to
// what the client omitted.
type PreferencesPayload struct {
	MaxResults               *int     `json:"maxResults"`
	MinScore                 *float64 `json:"minScore"`
	DubaiFocus               *bool    `json:"dubaiFocus"`
	IncludeMutualConnections *bool    `json:"includeMutualConnections"`
	PrioritizeActiveUsers    *bool    `json:"prioritizeActiveUsers"`
}

// Resolve applies documented defaults and clamps out-of-range values
func (p PreferencesPayload) Resolve() Preferences {
	prefs := Preferences{
		MaxResults:               defaultMaxResults,
		MinScore:                 defaultMinScore,
		IncludeMutualConnections: true,
	}

	if p.MaxResults != nil && *p.MaxResults > 0 {
		prefs.MaxResults = *p.MaxResults
		if prefs.MaxResults > maxMaxResults {
			prefs.MaxResults = maxMaxResults
		}
	}
	if p.MinScore != nil && *p.MinScore >= 0 && *p.MinScore <= 1 {
		prefs.MinScore = *p.MinScore
	}
	if p.DubaiFocus != nil {
		prefs.DubaiFocus = *p.DubaiFocus
	}
	if p.IncludeMutualConnections != nil {
		prefs.IncludeMutualConnections = *p.IncludeMutualConnections
	}
	if p.PrioritizeActiveUsers != nil {
		prefs.PrioritizeActiveUsers = *p.PrioritizeActiveUsers
	}

	return prefs
}

// Filters are optional server-side result filters, mirroring the ones the
// client can apply locally so both views stay consistent
type Filters struct {
	MatchType string `json:"matchType"`
	Location  string `json:"location"`
	Industry  string `json:"industry"`
}

// RecommendRequest is the payload for POST /recommendations
type RecommendRequest struct {
	Preferences       PreferencesPayload `json:"preferences"`
	Filters           *Filters           `json:"filters"`
	IncludeAIInsights bool               `json:"includeAIInsights"`
}

// Factors holds the named sub-scores of one match, each in [0,1]
type Factors struct {
	Interests             float64 `json:"interests"`
	Goals                 float64 `json:"goals"`
	Strengths             float64 `json:"strengths"`
	Location              float64 `json:"location"`
	Industry              float64 `json:"industry"`
	Experience            float64 `json:"experience"`
	MutualConnections     float64 `json:"mutualConnections"`
	ActivityLevel         float64 `json:"activityLevel"`
	ProfessionalAlignment float64 `json:"professionalAlignment"`
	NetworkingPotential   float64 `json:"networkingPotential"`
}

// Of returns the sub-score for a factor name
func (f Factors) Of(name FactorName) float64 {
	switch name {
	case FactorInterests:
		return f.Interests
	case FactorGoals:
		return f.Goals
	case FactorStrengths:
		return f.Strengths
	case FactorLocation:
		return f.Location
	case FactorIndustry:
		return f.Industry
	case FactorExperience:
		return f.Experience
	case FactorMutualConnections:
		return f.MutualConnections
	case FactorActivityLevel:
		return f.ActivityLevel
	case FactorProfessionalAlignment:
		return f.ProfessionalAlignment
	case FactorNetworkingPotential:
		return f.NetworkingPotential
	}
	return 0
}

// CandidateUser is the public projection of a recommended user
type CandidateUser struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	LinkedinInfo string   `json:"linkedinInfo,omitempty"`
	Goals        []string `json:"goals,omitempty"`
	Strengths    []string `json:"strengths,omitempty"`
	Interests    []string `json:"interests,omitempty"`
}

// MatchResult is the scored, explained output of comparing one candidate to
// the requester. Transient: computed per request, never stored.
type MatchResult struct {
	UserID    string        `json:"userId"`
	Score     float64       `json:"score"`
	Factors   Factors       `json:"factors"`
	Reasons   []string      `json:"reasons"`
	MatchType MatchType     `json:"matchType"`
	User      CandidateUser `json:"user"`

	// Retained for server-side filtering; not part of the wire shape.
	location string
	industry string
}

// RecommendResponse is the payload returned by POST /recommendations.
// AIInsights is always a string and may be empty.
type RecommendResponse struct {
	Recommendations []MatchResult `json:"recommendations"`
	AIInsights      string        `json:"aiInsights"`
}

// Candidate pairs a user profile with its requester-relative derived data
type Candidate struct {
	User              *auth.User
	MutualConnections int
}

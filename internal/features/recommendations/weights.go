package recommendations

// FactorName identifies one scoring dimension
type FactorName string

const (
	FactorInterests             FactorName = "interests"
	FactorGoals                 FactorName = "goals"
	FactorStrengths             FactorName = "strengths"
	FactorLocation              FactorName = "location"
	FactorIndustry              FactorName = "industry"
	FactorExperience            FactorName = "experience"
	FactorMutualConnections     FactorName = "mutualConnections"
	FactorActivityLevel         FactorName = "activityLevel"
	FactorProfessionalAlignment FactorName = "professionalAlignment"
	FactorNetworkingPotential   FactorName = "networkingPotential"
)

// factorOrder fixes the iteration order everywhere factors are combined or
// compared, so identical inputs always produce identical output.
var factorOrder = [...]FactorName{
	FactorInterests,
	FactorGoals,
	FactorStrengths,
	FactorLocation,
	FactorIndustry,
	FactorExperience,
	FactorMutualConnections,
	FactorActivityLevel,
	FactorProfessionalAlignment,
	FactorNetworkingPotential,
}

// Weights holds the relative importance of each factor. A weight set must
// sum to 1.0 so the final score stays in [0,1] without renormalizing.
type Weights struct {
	Interests             float64
	Goals                 float64
	Strengths             float64
	Location              float64
	Industry              float64
	Experience            float64
	MutualConnections     float64
	ActivityLevel         float64
	ProfessionalAlignment float64
	NetworkingPotential   float64
}

// WeightsV1 is the production weight set. Versioned so a future tuning pass
// can ship WeightsV2 side by side and compare.
var WeightsV1 = Weights{
	Interests:             0.15,
	Goals:                 0.12,
	Strengths:             0.10,
	Location:              0.10,
	Industry:              0.13,
	Experience:            0.08,
	MutualConnections:     0.12,
	ActivityLevel:         0.08,
	ProfessionalAlignment: 0.07,
	NetworkingPotential:   0.05,
}

// Of returns the weight for a factor name
func (w Weights) Of(name FactorName) float64 {
	switch name {
	case FactorInterests:
		return w.Interests
	case FactorGoals:
		return w.Goals
	case FactorStrengths:
		return w.Strengths
	case FactorLocation:
		return w.Location
	case FactorIndustry:
		return w.Industry
	case FactorExperience:
		return w.Experience
	case FactorMutualConnections:
		return w.MutualConnections
	case FactorActivityLevel:
		return w.ActivityLevel
	case FactorProfessionalAlignment:
		return w.ProfessionalAlignment
	case FactorNetworkingPotential:
		return w.NetworkingPotential
	}
	return 0
}

// Sum returns the total weight, used by tests to pin the 1.0 invariant
func (w Weights) Sum() float64 {
	total := 0.0
	for _, name := range factorOrder {
		total += w.Of(name)
	}
	return total
}

const (
	// mutualSaturation is the mutual-connection count at which that factor
	// reaches 1.0.
	mutualSaturation = 5

	// dubaiRegion is the target region matched when dubaiFocus is set
	dubaiRegion = "dubai"

	// maxReasons caps how many reasons a response carries per match
	maxReasons = 3
)

// factorMatchTypes maps each factor to the match type it implies when it is
// the dominant contributor.
var factorMatchTypes = map[FactorName]MatchType{
	FactorInterests:             MatchTypeSkills,
	FactorGoals:                 MatchTypeGoals,
	FactorStrengths:             MatchTypeSkills,
	FactorLocation:              MatchTypeLocation,
	FactorIndustry:              MatchTypeIndustry,
	FactorExperience:            MatchTypeGeneral,
	FactorMutualConnections:     MatchTypeGeneral,
	FactorActivityLevel:         MatchTypeGeneral,
	FactorProfessionalAlignment: MatchTypeGoals,
	FactorNetworkingPotential:   MatchTypeGeneral,
}

// matchTypePriority breaks ties between equal weighted contributions. Lower
// wins: industry > location > skills > goals > general.
var matchTypePriority = map[MatchType]int{
	MatchTypeIndustry: 0,
	MatchTypeLocation: 1,
	MatchTypeSkills:   2,
	MatchTypeGoals:    3,
	MatchTypeGeneral:  4,
}

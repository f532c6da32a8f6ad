package recommendations

import (
	"sort"
	"strings"
)

// RankOptions control filtering and truncation of scored results
type RankOptions struct {
	MinScore   float64
	MaxResults int
	MatchType  MatchType
	Location   string
	Industry   string
}

// Rank filters scored results, orders them deterministically and truncates
// to the result cap. Ordering is score descending with an ascending userId
// tie-break, so repeated calls over the same data return the same list.
func Rank(results []MatchResult, opts RankOptions) []MatchResult {
	filtered := make([]MatchResult, 0, len(results))
	for _, result := range results {
		if result.Score < opts.MinScore {
			continue
		}
		if opts.MatchType != "" && result.MatchType != opts.MatchType {
			continue
		}
		if !matchesText(result.location, opts.Location) {
			continue
		}
		if !matchesText(result.industry, opts.Industry) {
			continue
		}
		filtered = append(filtered, result)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Score != filtered[j].Score {
			return filtered[i].Score > filtered[j].Score
		}
		return filtered[i].UserID < filtered[j].UserID
	})

	if opts.MaxResults > 0 && len(filtered) > opts.MaxResults {
		filtered = filtered[:opts.MaxResults]
	}
	return filtered
}

func matchesText(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(strings.TrimSpace(filter)))
}

package interests

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConnectionSource provides the accepted-connection peers of a user.
// Implemented by the connections repository.
type ConnectionSource interface {
	AcceptedPeerIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)
}

type Service struct {
	repo        *Repository
	connections ConnectionSource
}

func NewService(repo *Repository, connections ConnectionSource) *Service {
	return &Service{repo: repo, connections: connections}
}

// Personalization weights: a user's own tags count more than tags seen on
// their connections, and earlier tags in each list count slightly more.
const (
	ownTagWeight        = 3.0
	connectionTagWeight = 2.0
	positionDecay       = 0.05
)

// GetSuggestedInterests returns popular interest tags, reweighted by the
// user's own tags and their connections' tags when available
func (s *Service) GetSuggestedInterests(ctx context.Context, userID *primitive.ObjectID, ownTags []string, limit int) (*SuggestedInterestsResponse, error) {
	popular, err := s.repo.GetPopularTags(ctx, limit*3)
	if err != nil {
		return nil, err
	}

	if userID == nil {
		return popularResponse(popular, limit), nil
	}

	var connectionTags []string
	if s.connections != nil {
		if peers, err := s.connections.AcceptedPeerIDs(ctx, *userID); err == nil && len(peers) > 0 {
			connectionTags, _ = s.repo.GetTagsForUsers(ctx, peers)
		}
	}

	if len(ownTags) == 0 && len(connectionTags) == 0 {
		return popularResponse(popular, limit), nil
	}

	tagScores := make(map[string]float64)
	for i, tag := range ownTags {
		weight := ownTagWeight * (1.0 - float64(i)*positionDecay)
		if weight < 0.5 {
			weight = 0.5
		}
		tagScores[tag] += weight
	}
	for i, tag := range connectionTags {
		weight := connectionTagWeight * (1.0 - float64(i)*positionDecay)
		if weight < 0.3 {
			weight = 0.3
		}
		tagScores[tag] += weight
	}

	counts := make(map[string]int, len(popular))
	for _, p := range popular {
		counts[p.Name] = p.Count
		// Popular tags the user has no signal for still get a floor score
		// so suggestions never come back empty for sparse profiles.
		if _, ok := tagScores[p.Name]; !ok {
			tagScores[p.Name] = 0.3
		}
	}

	type tagScore struct {
		Tag   string
		Score float64
	}
	sorted := make([]tagScore, 0, len(tagScores))
	for tag, score := range tagScores {
		sorted = append(sorted, tagScore{Tag: tag, Score: score})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Tag < sorted[j].Tag
	})

	maxScore := sorted[0].Score
	if maxScore == 0 {
		maxScore = 1
	}

	categories := make([]Category, 0, limit)
	for _, ts := range sorted {
		if len(categories) >= limit {
			break
		}
		categories = append(categories, Category{
			Name:           ts.Tag,
			DisplayName:    capitalizeFirst(ts.Tag),
			UserCount:      counts[ts.Tag],
			RelevanceScore: ts.Score / maxScore,
		})
	}

	return &SuggestedInterestsResponse{
		Categories:   categories,
		Personalized: true,
	}, nil
}

func popularResponse(popular []TagCountResult, limit int) *SuggestedInterestsResponse {
	maxCount := 0
	for _, p := range popular {
		if p.Count > maxCount {
			maxCount = p.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	if len(popular) > limit {
		popular = popular[:limit]
	}

	categories := make([]Category, len(popular))
	for i, p := range popular {
		categories[i] = Category{
			Name:           p.Name,
			DisplayName:    capitalizeFirst(p.Name),
			UserCount:      p.Count,
			RelevanceScore: float64(p.Count) / float64(maxCount),
		}
	}

	return &SuggestedInterestsResponse{
		Categories:   categories,
		Personalized: false,
	}
}

func capitalizeFirst(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(string(s[0])) + s[1:]
}

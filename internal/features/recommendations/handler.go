package recommendations

import (
	"context"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/pkg/logger"
	"github.com/hamzarauf/linkora/internal/pkg/response"
)

// CandidateSource supplies the scoreable pool for a requester
type CandidateSource interface {
	CandidatePool(ctx context.Context, requesterID primitive.ObjectID) ([]Candidate, error)
}

// InsightGenerator produces the optional narrative for a ranked result list
type InsightGenerator interface {
	Summarize(ctx context.Context, requester *auth.User, results []MatchResult) (string, error)
}

// Handler serves the recommendation endpoint
type Handler struct {
	candidates     CandidateSource
	insights       InsightGenerator
	scorer         *Scorer
	insightTimeout time.Duration
	log            *logger.Logger
}

// NewHandler creates the handler. insights may be nil when no LLM is
// configured; aiInsights is then always empty.
func NewHandler(candidates CandidateSource, insights InsightGenerator, scorer *Scorer, insightTimeout time.Duration, log *logger.Logger) *Handler {
	return &Handler{
		candidates:     candidates,
		insights:       insights,
		scorer:         scorer,
		insightTimeout: insightTimeout,
		log:            log,
	}
}

// Recommend godoc
// @Summary Generate connection recommendations
// @Description Scores every eligible user against the requester's profile and returns a ranked, explained list
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecommendRequest false "Preferences and filters"
// @Success 200 {object} response.SuccessResponse{data=RecommendResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /recommendations [post]
func (h *Handler) Recommend(c *gin.Context) {
	user, ok := auth.RequesterFrom(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	// A missing or unreadable body is not an error here: preferences all
	// have defaults, so an empty POST is a valid request.
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		h.log.Debug("recommendations: ignoring malformed body for user %s: %v", user.ID.Hex(), err)
		req = RecommendRequest{}
	}

	prefs := req.Preferences.Resolve()
	opts := RankOptions{
		MinScore:   prefs.MinScore,
		MaxResults: prefs.MaxResults,
	}

	if req.Filters != nil {
		if req.Filters.MatchType != "" {
			matchType, valid := ParseMatchType(req.Filters.MatchType)
			if !valid {
				response.BadRequest(c, "matchType must be one of: industry, location, skills, goals, general", "INVALID_MATCH_TYPE")
				return
			}
			opts.MatchType = matchType
		}
		opts.Location = req.Filters.Location
		opts.Industry = req.Filters.Industry
	}

	pool, err := h.candidates.CandidatePool(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("recommendations: candidate pool for user %s: %v", user.ID.Hex(), err)
		response.InternalServerError(c, "Failed to load candidates", "DATABASE_ERROR")
		return
	}

	scored := make([]MatchResult, 0, len(pool))
	for _, candidate := range pool {
		scored = append(scored, h.scorer.Score(user, candidate, prefs))
	}

	ranked := Rank(scored, opts)
	for i := range ranked {
		if len(ranked[i].Reasons) > maxReasons {
			ranked[i].Reasons = ranked[i].Reasons[:maxReasons]
		}
	}

	response.Success(c, RecommendResponse{
		Recommendations: ranked,
		AIInsights:      h.generateInsights(c.Request.Context(), req.IncludeAIInsights, user, ranked),
	})
}

// generateInsights is best-effort: any LLM failure logs a warning and the
// response ships with an empty string instead of an error.
func (h *Handler) generateInsights(ctx context.Context, requested bool, user *auth.User, ranked []MatchResult) string {
	if !requested || h.insights == nil || len(ranked) == 0 {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, h.insightTimeout)
	defer cancel()

	insights, err := h.insights.Summarize(ctx, user, ranked)
	if err != nil {
		h.log.Warn("recommendations: insights unavailable for user %s: %v", user.ID.Hex(), err)
		return ""
	}
	return insights
}

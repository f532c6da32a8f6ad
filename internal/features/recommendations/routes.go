package recommendations

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hamzarauf/linkora/internal/config"
	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/features/connections"
	"github.com/hamzarauf/linkora/internal/pkg/llm"
	"github.com/hamzarauf/linkora/internal/pkg/logger"
	"github.com/hamzarauf/linkora/internal/pkg/ratelimit"
)

// RegisterRoutes registers the recommendation endpoint. llmClient may be nil
// when no API key is configured; recommendations still work, aiInsights stays
// empty.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, llmClient llm.Client, log *logger.Logger) {
	connRepo := connections.NewRepository(db)
	repo := NewRepository(db, connRepo)
	scorer := NewScorer(WeightsV1)

	var insights InsightGenerator
	if llmClient != nil {
		insights = NewSummarizer(llmClient)
	}

	handler := NewHandler(repo, insights, scorer, cfg.LLMTimeout, log)

	authRepo := auth.NewRepository(db)
	authMiddleware := auth.NewAuthMiddleware(authRepo, cfg)

	// Scoring walks the whole candidate pool, so keep the endpoint behind a
	// tighter per-user limit than the global one.
	limiter := ratelimit.New(20, time.Minute)
	limiter.StartCleanup(5 * time.Minute)

	router.POST("/recommendations", authMiddleware, ratelimit.Middleware(limiter, ratelimit.ByUser), handler.Recommend)
}

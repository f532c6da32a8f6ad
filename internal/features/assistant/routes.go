package assistant

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hamzarauf/linkora/internal/config"
	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/pkg/llm"
	"github.com/hamzarauf/linkora/internal/pkg/logger"
	"github.com/hamzarauf/linkora/internal/pkg/ratelimit"
)

// RegisterRoutes registers the assistant routes. The endpoint is only
// mounted when an LLM client is configured.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, llmClient llm.Client, log *logger.Logger) {
	if llmClient == nil {
		log.Warn("assistant: no LLM client configured, /assistant/chat disabled")
		return
	}

	handler := NewHandler(llmClient, cfg.LLMTimeout, log)

	authRepo := auth.NewRepository(db)
	authMiddleware := auth.NewAuthMiddleware(authRepo, cfg)

	limiter := ratelimit.New(10, time.Minute)
	limiter.StartCleanup(5 * time.Minute)

	assistantGroup := router.Group("/assistant")
	{
		assistantGroup.POST("/chat", authMiddleware, ratelimit.Middleware(limiter, ratelimit.ByUser), handler.Chat)
	}
}

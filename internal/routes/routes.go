package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hamzarauf/linkora/internal/config"
	"github.com/hamzarauf/linkora/internal/features/assistant"
	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/features/connections"
	"github.com/hamzarauf/linkora/internal/features/interests"
	"github.com/hamzarauf/linkora/internal/features/jobs"
	"github.com/hamzarauf/linkora/internal/features/recommendations"
	"github.com/hamzarauf/linkora/internal/pkg/llm"
	"github.com/hamzarauf/linkora/internal/pkg/logger"
)

// SetupRoutes mounts every feature under /api/v1. llmClient may be nil; the
// AI-backed surfaces degrade instead of failing startup.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, llmClient llm.Client, log *logger.Logger) {
	api := router.Group("/api/v1")

	auth.RegisterRoutes(api, db, cfg)
	connections.RegisterRoutes(api, db, cfg)
	recommendations.RegisterRoutes(api, db, cfg, llmClient, log)
	interests.RegisterRoutes(api, db, cfg)
	jobs.RegisterRoutes(api, db, cfg)
	assistant.RegisterRoutes(api, db, cfg, llmClient, log)
}

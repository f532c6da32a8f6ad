package jobs

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hamzarauf/linkora/internal/config"
	"github.com/hamzarauf/linkora/internal/features/auth"
)

// RegisterRoutes registers the job board routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo)
	authRepo := auth.NewRepository(db)
	authMiddleware := auth.NewAuthMiddleware(authRepo, cfg)

	jobsGroup := router.Group("/jobs")
	{
		jobsGroup.GET("", handler.List)
		jobsGroup.GET("/:id", handler.Get)
		jobsGroup.POST("", authMiddleware, handler.Create)
	}
}

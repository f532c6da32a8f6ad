package interests

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hamzarauf/linkora/internal/config"
	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/features/connections"
)

// RegisterRoutes registers the interests routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	connRepo := connections.NewRepository(db)
	service := NewService(repo, connRepo)
	handler := NewHandler(repo, service)
	authRepo := auth.NewRepository(db)

	authMiddleware := auth.NewAuthMiddleware(authRepo, cfg)
	optionalAuth := auth.OptionalAuthMiddleware(authRepo, cfg)

	interestsGroup := router.Group("/interests")
	{
		interestsGroup.GET("/suggested", optionalAuth, handler.GetSuggestedInterests)
	}

	users := router.Group("/users")
	users.Use(authMiddleware)
	{
		users.POST("/me/interests", handler.SaveInterests)
	}
}

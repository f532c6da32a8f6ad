package auth

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hamzarauf/linkora/internal/config"
)

// RegisterRoutes registers the auth and profile routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)
	authMiddleware := NewAuthMiddleware(repo, cfg)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/google", handler.GoogleLogin)
	}

	users := router.Group("/users")
	{
		me := users.Group("/me")
		me.Use(authMiddleware)
		{
			me.GET("", handler.GetMe)
			me.PATCH("", handler.UpdateProfile)
		}

		users.GET("/:id", handler.GetPublicProfile)
	}
}

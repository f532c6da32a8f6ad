package connections

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hamzarauf/linkora/internal/config"
	"github.com/hamzarauf/linkora/internal/features/auth"
)

// RegisterRoutes registers the connection graph routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	authRepo := auth.NewRepository(db)
	handler := NewHandler(repo, authRepo)

	authMiddleware := auth.NewAuthMiddleware(authRepo, cfg)

	conns := router.Group("/connections")
	conns.Use(authMiddleware)
	{
		conns.GET("", handler.List)
		conns.GET("/requests", handler.ListRequests)
		conns.POST("/requests/:id/accept", handler.Accept)
		conns.POST("/requests/:id/decline", handler.Decline)
		conns.DELETE("/:userId", handler.Remove)
	}

	users := router.Group("/users")
	users.Use(authMiddleware)
	{
		users.POST("/:id/connect", handler.Connect)
	}
}

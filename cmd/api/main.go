// @title Linkora API
// @version 1.0
// @description Professional networking API with AI-powered connection recommendations
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>"
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/hamzarauf/linkora/docs"
	"github.com/hamzarauf/linkora/internal/config"
	"github.com/hamzarauf/linkora/internal/database"
	"github.com/hamzarauf/linkora/internal/middleware"
	"github.com/hamzarauf/linkora/internal/pkg/llm"
	"github.com/hamzarauf/linkora/internal/pkg/logger"
	"github.com/hamzarauf/linkora/internal/pkg/response"
	"github.com/hamzarauf/linkora/internal/routes"
)

func main() {
	cfg := config.Load()

	appLog := logger.New(logger.INFO)
	if cfg.AppEnv != "production" {
		appLog = logger.New(logger.DEBUG)
	}

	// Configure Swagger metadata at runtime
	docs.SwaggerInfo.Title = "Linkora API"
	docs.SwaggerInfo.Description = "Professional networking API with AI-powered connection recommendations"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer db.Disconnect(context.Background())

	// The LLM is optional infrastructure. Without a key the API still serves
	// recommendations, just without insights or the assistant.
	var llmClient llm.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			appLog.Warn("LLM client unavailable: %v", err)
		} else {
			llmClient = geminiClient
			defer geminiClient.Close()
		}
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
			ginSwagger.PersistAuthorization(true),
		),
	)

	routes.SetupRoutes(router, db.Database, cfg, llmClient, appLog)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

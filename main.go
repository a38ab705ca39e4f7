package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hireagent/backend/analyzer"
	"github.com/hireagent/backend/config"
	_ "github.com/hireagent/backend/docs"
	"github.com/hireagent/backend/gemini"
	"github.com/hireagent/backend/handlers"
	"github.com/hireagent/backend/scraper"
	"github.com/hireagent/backend/storage"
)

// @title HireAgent API
// @version 1.0
// @description AI-powered hiring assistant: resume parsing, job matching and candidate scoring.

// @contact.name API Support
// @contact.email support@hireagent.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	log.Println("Initializing file store...")
	fileStore, err := storage.NewFileStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize file store: %v", err)
	}

	log.Println("Initializing Gemini client...")
	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}

	scraperService := scraper.NewService(cfg)
	pipeline := analyzer.New(cfg, geminiClient, scraperService, fileStore)

	// Create handlers
	resumeHandler := handlers.NewResumeHandler(pipeline, fileStore)
	jobHandler := handlers.NewJobHandler(pipeline)
	analysisHandler := handlers.NewAnalysisHandler(pipeline)
	enrichHandler := handlers.NewEnrichHandler(scraperService)

	// Create Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOriginsList(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/upload-resume", resumeHandler.UploadResume)
		api.DELETE("/cleanup-file/:file_id", resumeHandler.CleanupFile)
		api.POST("/bulk-cleanup", resumeHandler.BulkCleanup)

		api.POST("/validate-job-description", jobHandler.ValidateJobDescription)
		api.POST("/extract-job-from-url", jobHandler.ExtractJobFromURL)

		api.POST("/analyze-candidate", analysisHandler.AnalyzeCandidate)
		api.POST("/comprehensive-analysis", analysisHandler.ComprehensiveAnalysis)
		api.POST("/enrich-profile", enrichHandler.EnrichProfile)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

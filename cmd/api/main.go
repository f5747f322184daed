package main

import (
	"fmt"
	"log"
	"time"

	"campaign-prediction-api/config"
	"campaign-prediction-api/handlers"
	"campaign-prediction-api/middleware"
	"campaign-prediction-api/models"
	"campaign-prediction-api/services"
	"campaign-prediction-api/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql db handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&models.Prediction{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	// Redis cache (degraded mode without it: reads skip the cache, the
	// live feed endpoint reports unavailable)
	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
	}
	defer cache.Close()

	authService, err := services.NewAuthService(cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to init auth service: %v", err)
	}

	predictionStore := store.New(db, time.Duration(cfg.Store.TimeoutSeconds)*time.Second)

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "UP",
			"message": "Campaign Prediction API is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := handlers.NewAuthHandler(authService)
	predictionsHandler := handlers.NewPredictionsHandler(predictionStore, cache)

	api := router.Group("/api")
	api.POST("/auth/token", authHandler.IssueToken)
	api.GET("/history/live", handlers.LiveHistory(cache, authService))

	protected := api.Group("/")
	protected.Use(middleware.RequireService(authService))
	protected.POST("/predictions", predictionsHandler.CreatePrediction)
	protected.GET("/history", predictionsHandler.GetHistory)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"net/http"
	"time"

	"meal-marketplace-api/config"
	"meal-marketplace-api/handlers"
	"meal-marketplace-api/logging"
	"meal-marketplace-api/middleware"
	"meal-marketplace-api/repository"
	"meal-marketplace-api/routes"
	"meal-marketplace-api/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	gin.SetMode(cfg.GinMode)
	log := logging.New(cfg.LogLevel, cfg.GinMode == gin.DebugMode)

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}
	log.Info().Str("path", cfg.DBPath).Msg("database connected and migrated")

	// Wiring: repositories -> services -> handlers
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	mealRepo := repository.NewMealRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	authSvc := services.NewAuthService(db, userRepo, providerRepo)
	categorySvc := services.NewCategoryService(categoryRepo, mealRepo)
	mealSvc := services.NewMealService(db, mealRepo, categoryRepo, providerRepo, reviewRepo)
	orderSvc := services.NewOrderService(db, orderRepo, mealRepo, providerRepo, log)
	providerSvc := services.NewProviderService(providerRepo, orderRepo, mealRepo)
	adminSvc := services.NewAdminService(userRepo, providerRepo, orderRepo)
	browseSvc := services.NewRestaurantService(providerRepo, mealRepo, categoryRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo, providerRepo)

	tokens := middleware.NewAuthMiddleware(cfg.JWTSecret, time.Duration(cfg.TokenTTLH)*time.Hour)

	h := &routes.Handlers{
		Auth:       handlers.NewAuthHandler(authSvc, tokens),
		Category:   handlers.NewCategoryHandler(categorySvc, browseSvc),
		Meal:       handlers.NewMealHandler(mealSvc),
		Order:      handlers.NewOrderHandler(orderSvc),
		Provider:   handlers.NewProviderHandler(providerSvc, orderSvc),
		Admin:      handlers.NewAdminHandler(adminSvc, orderSvc),
		Restaurant: handlers.NewRestaurantHandler(browseSvc),
		Review:     handlers.NewReviewHandler(reviewSvc),
	}

	if err := handlers.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("validator setup failed")
	}

	// Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Meal Marketplace API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, tokens, h)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

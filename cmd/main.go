package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nutriplan/nutriplan-backend/internal/db"
	"github.com/nutriplan/nutriplan-backend/internal/engine"
	"github.com/nutriplan/nutriplan-backend/internal/handlers"
	"github.com/nutriplan/nutriplan-backend/internal/logger"
	"github.com/nutriplan/nutriplan-backend/internal/middleware"
	"github.com/nutriplan/nutriplan-backend/internal/repos"
	"github.com/nutriplan/nutriplan-backend/internal/server"
	"github.com/nutriplan/nutriplan-backend/internal/services"
	"github.com/nutriplan/nutriplan-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	httpAddr := utils.GetEnv("HTTP_ADDR", ":8000", log)
	corpusPath := utils.GetEnv("CORPUS_PATH", "data/diet_recommendations.csv", log)
	catalogPath := utils.GetEnv("CATALOG_PATH", "", log)
	redisAddr := utils.GetEnv("REDIS_ADDR", "", log)
	allowOrigins := []string{
		utils.GetEnv("CORS_ORIGIN", "http://localhost:3000", log),
	}

	// Database
	databaseService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := databaseService.AutoMigrateAll(); err != nil {
		log.Warn("Auto migration failed", "error", err)
	}
	theDB := databaseService.DB()

	// Repos
	log.Info("Setting up repos...")
	userRepo := repos.NewUserRepo(theDB, log)
	mealPlanRepo := repos.NewMealPlanRepo(theDB, log)
	mealRepo := repos.NewMealRepo(theDB, log)

	// Recommendation engine
	corpus := engine.LoadCorpus(corpusPath, log)
	catalog := engine.DefaultCatalog()
	if catalogPath != "" {
		loaded, err := engine.LoadCatalog(catalogPath)
		if err != nil {
			log.Warn("Catalog override failed to load, using built-in catalog", "path", catalogPath, "error", err)
		} else {
			catalog = loaded
		}
	}
	recommender := engine.NewRecommender(corpus, catalog, log)

	// Optional nutrition cache
	var redisClient *redis.Client
	if redisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: redisAddr})
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unreachable, nutrition cache disabled", "addr", redisAddr, "error", err)
			redisClient = nil
		}
		cancel()
	}

	// Services
	log.Info("Setting up services...")
	authService := services.NewAuthService(theDB, log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
	userService := services.NewUserService(theDB, log, userRepo)
	nutritionService := services.NewNutritionService(log, redisClient)
	recommendationService := services.NewRecommendationService(log, userRepo, recommender)
	mealPlanService := services.NewMealPlanService(theDB, log, userRepo, mealPlanRepo, mealRepo, recommender)

	// Handlers
	log.Info("Setting up handlers...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:           authHandler,
		AuthMiddleware:        authMiddleware,
		UserHandler:           userHandler,
		MealPlanHandler:       mealPlanHandler,
		NutritionHandler:      nutritionHandler,
		RecommendationHandler: recommendationHandler,
		AllowOrigins:          allowOrigins,
	})

	log.Info("Starting HTTP server", "addr", httpAddr)
	if err := router.Run(httpAddr); err != nil {
		log.Fatal("HTTP server exited", "error", err)
	}
}

package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nutriplan/nutriplan-backend/internal/handlers"
	"github.com/nutriplan/nutriplan-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler           *handlers.AuthHandler
	AuthMiddleware        *middleware.AuthMiddleware
	UserHandler           *handlers.UserHandler
	MealPlanHandler       *handlers.MealPlanHandler
	NutritionHandler      *handlers.NutritionHandler
	RecommendationHandler *handlers.RecommendationHandler
	AllowOrigins          []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
	}

	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.GET("/users/me", cfg.UserHandler.GetMe)
		protected.PUT("/users/me", cfg.UserHandler.UpdateProfile)

		protected.GET("/meal-plans", cfg.MealPlanHandler.List)
		protected.POST("/meal-plans", cfg.MealPlanHandler.Create)
		protected.POST("/meal-plans/generate", cfg.MealPlanHandler.Generate)
		protected.POST("/meal-plans/meals", cfg.MealPlanHandler.CreateMeal)

		protected.POST("/nutrition/analyze", cfg.NutritionHandler.Analyze)

		protected.GET("/recommendations", cfg.RecommendationHandler.Get)
	}

	return router
}

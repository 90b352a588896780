package services

import (
	"context"

	"github.com/nutriplan/nutriplan-backend/internal/engine"
	"github.com/nutriplan/nutriplan-backend/internal/logger"
	"github.com/nutriplan/nutriplan-backend/internal/repos"
)

type RecommendationService interface {
	RecommendForCurrentUser(ctx context.Context, mealType engine.MealType) ([]engine.Meal, error)
	Recommend(profile engine.Profile, mealType engine.MealType, targetCalories float64) []engine.Meal
}

type recommendationService struct {
	log         *logger.Logger
	userRepo    repos.UserRepo
	recommender *engine.Recommender
}

func NewRecommendationService(log *logger.Logger, userRepo repos.UserRepo, recommender *engine.Recommender) RecommendationService {
	serviceLog := log.With("service", "RecommendationService")
	return &recommendationService{log: serviceLog, userRepo: userRepo, recommender: recommender}
}

// RecommendForCurrentUser derives the slot calorie target from the user's
// TDEE and the fixed meal-type share, then queries the engine.
func (rs *recommendationService) RecommendForCurrentUser(ctx context.Context, mealType engine.MealType) ([]engine.Meal, error) {
	user, err := CurrentUser(ctx, rs.userRepo)
	if err != nil {
		return nil, err
	}
	profile := EngineProfile(user)
	targetCalories := engine.TDEE(profile) * engine.MealCalorieShare[mealType]
	return rs.recommender.Recommend(profile, mealType, targetCalories), nil
}

func (rs *recommendationService) Recommend(profile engine.Profile, mealType engine.MealType, targetCalories float64) []engine.Meal {
	return rs.recommender.Recommend(profile, mealType, targetCalories)
}

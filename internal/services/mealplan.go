package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/nutriplan-backend/internal/engine"
	"github.com/nutriplan/nutriplan-backend/internal/logger"
	"github.com/nutriplan/nutriplan-backend/internal/repos"
	"github.com/nutriplan/nutriplan-backend/internal/types"
)

// MealPlanWithMeals is a plan plus the persisted meals falling inside its
// date range.
type MealPlanWithMeals struct {
	Plan  *types.MealPlan `json:"plan"`
	Meals []*types.Meal   `json:"meals"`
}

type MealInput struct {
	Name        string
	Description string
	MealType    engine.MealType
	Date        time.Time
	Nutrition   *engine.Estimate
	Foods       []FoodInput
}

type FoodInput struct {
	Name      string
	Quantity  float64
	Unit      string
	Nutrition *engine.Estimate
}

type MealPlanService interface {
	ListPlans(ctx context.Context, startsAfter, endsBefore *time.Time) ([]MealPlanWithMeals, error)
	CreatePlan(ctx context.Context, start, end time.Time, goal string) (*types.MealPlan, error)
	GeneratePlan(ctx context.Context, start, end time.Time, goal string) (*MealPlanWithMeals, error)
	CreateMeal(ctx context.Context, input MealInput) (*types.Meal, error)
}

type mealPlanService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	mealPlanRepo repos.MealPlanRepo
	mealRepo     repos.MealRepo
	recommender  *engine.Recommender
}

func NewMealPlanService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	mealPlanRepo repos.MealPlanRepo,
	mealRepo repos.MealRepo,
	recommender *engine.Recommender,
) MealPlanService {
	serviceLog := log.With("service", "MealPlanService")
	return &mealPlanService{
		db:           db,
		log:          serviceLog,
		userRepo:     userRepo,
		mealPlanRepo: mealPlanRepo,
		mealRepo:     mealRepo,
		recommender:  recommender,
	}
}

func (ms *mealPlanService) ListPlans(ctx context.Context, startsAfter, endsBefore *time.Time) ([]MealPlanWithMeals, error) {
	user, err := CurrentUser(ctx, ms.userRepo)
	if err != nil {
		return nil, err
	}
	plans, err := ms.mealPlanRepo.GetByUserID(ctx, nil, user.ID, startsAfter, endsBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	result := make([]MealPlanWithMeals, 0, len(plans))
	for _, plan := range plans {
		meals, err := ms.mealRepo.GetByUserDateRange(ctx, nil, user.ID, plan.StartDate, plan.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to load meals for plan: %w", err)
		}
		result = append(result, MealPlanWithMeals{Plan: plan, Meals: meals})
	}
	return result, nil
}

func (ms *mealPlanService) CreatePlan(ctx context.Context, start, end time.Time, goal string) (*types.MealPlan, error) {
	user, err := CurrentUser(ctx, ms.userRepo)
	if err != nil {
		return nil, err
	}
	plan := &types.MealPlan{
		ID:        uuid.New(),
		UserID:    user.ID,
		StartDate: start,
		EndDate:   end,
		Goal:      goal,
	}
	created, err := ms.mealPlanRepo.Create(ctx, nil, []*types.MealPlan{plan})
	if err != nil {
		return nil, fmt.Errorf("failed to create meal plan: %w", err)
	}
	return created[0], nil
}

// GeneratePlan runs the engine's plan assembly for the current user and
// persists the plan, its meals and their food items in one transaction.
// Date-range problems surface as engine.ValidationError.
func (ms *mealPlanService) GeneratePlan(ctx context.Context, start, end time.Time, goal string) (*MealPlanWithMeals, error) {
	user, err := CurrentUser(ctx, ms.userRepo)
	if err != nil {
		return nil, err
	}
	profile := EngineProfile(user)

	generated, err := ms.recommender.GeneratePlan(ctx, profile, start, end, goal)
	if err != nil {
		return nil, err
	}

	targetJSON, err := json.Marshal(generated.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to encode daily target: %w", err)
	}
	plan := &types.MealPlan{
		ID:          uuid.New(),
		UserID:      user.ID,
		StartDate:   start,
		EndDate:     end,
		Goal:        generated.Goal,
		DailyTarget: targetJSON,
	}

	meals := make([]*types.Meal, 0, len(generated.Meals))
	for _, planned := range generated.Meals {
		meal, err := persistableMeal(user.ID, planned)
		if err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}

	if err := ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ms.mealPlanRepo.Create(ctx, tx, []*types.MealPlan{plan}); err != nil {
			return fmt.Errorf("failed to create meal plan: %w", err)
		}
		if _, err := ms.mealRepo.Create(ctx, tx, meals); err != nil {
			return fmt.Errorf("failed to create generated meals: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	ms.log.Info("Generated meal plan",
		"user_id", user.ID,
		"days", int(end.Sub(start).Hours()/24)+1,
		"meals", len(meals),
		"goal", generated.Goal)
	return &MealPlanWithMeals{Plan: plan, Meals: meals}, nil
}

// CreateMeal stores a caller-supplied meal; when no plan covers the meal's
// date a single-day plan is created alongside it.
func (ms *mealPlanService) CreateMeal(ctx context.Context, input MealInput) (*types.Meal, error) {
	user, err := CurrentUser(ctx, ms.userRepo)
	if err != nil {
		return nil, err
	}

	meal := &types.Meal{
		ID:          uuid.New(),
		UserID:      user.ID,
		Name:        input.Name,
		Description: input.Description,
		MealType:    string(input.MealType),
		Date:        input.Date,
	}
	if input.Nutrition != nil {
		raw, err := json.Marshal(input.Nutrition)
		if err != nil {
			return nil, fmt.Errorf("failed to encode meal nutrition: %w", err)
		}
		meal.Nutrition = raw
	}
	for _, food := range input.Foods {
		item := types.FoodItem{
			ID:       uuid.New(),
			MealID:   meal.ID,
			Name:     food.Name,
			Quantity: food.Quantity,
			Unit:     food.Unit,
		}
		if item.Unit == "" {
			item.Unit = "g"
		}
		if food.Nutrition != nil {
			raw, err := json.Marshal(food.Nutrition)
			if err != nil {
				return nil, fmt.Errorf("failed to encode food nutrition: %w", err)
			}
			item.Nutrition = raw
		}
		meal.FoodItems = append(meal.FoodItems, item)
	}

	if err := ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		covering, err := ms.mealPlanRepo.GetCovering(ctx, tx, user.ID, input.Date)
		if err != nil {
			return fmt.Errorf("failed to look up covering plan: %w", err)
		}
		if covering == nil {
			dayStart := input.Date.Truncate(24 * time.Hour)
			plan := &types.MealPlan{
				ID:        uuid.New(),
				UserID:    user.ID,
				StartDate: dayStart,
				EndDate:   dayStart.Add(24*time.Hour - time.Nanosecond),
				Goal:      user.HealthGoal,
			}
			if _, err := ms.mealPlanRepo.Create(ctx, tx, []*types.MealPlan{plan}); err != nil {
				return fmt.Errorf("failed to create covering plan: %w", err)
			}
		}
		if _, err := ms.mealRepo.Create(ctx, tx, []*types.Meal{meal}); err != nil {
			return fmt.Errorf("failed to create meal: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return meal, nil
}

func persistableMeal(userID uuid.UUID, planned engine.PlannedMeal) (*types.Meal, error) {
	nutritionJSON, err := json.Marshal(planned.Nutrition)
	if err != nil {
		return nil, fmt.Errorf("failed to encode meal nutrition: %w", err)
	}
	meal := &types.Meal{
		ID:          planned.Meal.ID,
		UserID:      userID,
		Name:        planned.Name,
		Description: planned.Description,
		MealType:    string(planned.Type),
		Date:        planned.Date,
		Nutrition:   nutritionJSON,
	}
	for _, food := range planned.Foods {
		foodJSON, err := json.Marshal(food.Nutrition)
		if err != nil {
			return nil, fmt.Errorf("failed to encode food nutrition: %w", err)
		}
		meal.FoodItems = append(meal.FoodItems, types.FoodItem{
			ID:        food.ID,
			MealID:    meal.ID,
			Name:      food.Name,
			Quantity:  food.Quantity,
			Unit:      food.Unit,
			Nutrition: foodJSON,
		})
	}
	return meal, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/nutriplan-backend/internal/engine"
	"github.com/nutriplan/nutriplan-backend/internal/logger"
	"github.com/nutriplan/nutriplan-backend/internal/repos"
	"github.com/nutriplan/nutriplan-backend/internal/requestdata"
	"github.com/nutriplan/nutriplan-backend/internal/types"
)

type ProfileUpdate struct {
	FirstName       *string
	LastName        *string
	Age             *int
	Gender          *string
	HeightCm        *float64
	WeightKg        *float64
	ActivityLevel   *string
	HealthGoal      *string
	TargetWeightKg  *float64
	FoodPreferences *[]string
	Allergies       *[]string
}

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	return CurrentUser(ctx, us.userRepo)
}

func (us *userService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*types.User, error) {
	user, err := CurrentUser(ctx, us.userRepo)
	if err != nil {
		return nil, err
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Age != nil {
		user.Age = *update.Age
	}
	if update.Gender != nil {
		user.Gender = *update.Gender
	}
	if update.HeightCm != nil {
		user.HeightCm = *update.HeightCm
	}
	if update.WeightKg != nil {
		user.WeightKg = *update.WeightKg
	}
	if update.ActivityLevel != nil {
		user.ActivityLevel = *update.ActivityLevel
	}
	if update.HealthGoal != nil {
		user.HealthGoal = *update.HealthGoal
	}
	if update.TargetWeightKg != nil {
		user.TargetWeightKg = *update.TargetWeightKg
	}
	if update.FoodPreferences != nil {
		user.FoodPreferences = *update.FoodPreferences
	}
	if update.Allergies != nil {
		user.Allergies = *update.Allergies
	}
	return us.userRepo.Update(ctx, nil, user)
}

// CurrentUser resolves the authenticated user from the request context.
func CurrentUser(ctx context.Context, userRepo repos.UserRepo) (*types.User, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("no authenticated user in context")
	}
	users, err := userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user not found")
	}
	return users[0], nil
}

// EngineProfile maps a stored user onto the engine's profile shape.
func EngineProfile(user *types.User) engine.Profile {
	return engine.Profile{
		Age:             user.Age,
		Gender:          user.Gender,
		HeightCm:        user.HeightCm,
		WeightKg:        user.WeightKg,
		ActivityLevel:   user.ActivityLevel,
		HealthGoal:      user.HealthGoal,
		FoodPreferences: user.FoodPreferences,
		Allergies:       user.Allergies,
	}
}

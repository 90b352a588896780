package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/nutriplan-backend/internal/logger"
	"github.com/nutriplan/nutriplan-backend/internal/types"
)

type MealRepo interface {
	Create(ctx context.Context, tx *gorm.DB, meals []*types.Meal) ([]*types.Meal, error)
	GetByUserDateRange(ctx context.Context, tx *gorm.DB, userID uuid.UUID, start, end time.Time) ([]*types.Meal, error)
}

type mealRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMealRepo(db *gorm.DB, baseLog *logger.Logger) MealRepo {
	repoLog := baseLog.With("repo", "MealRepo")
	return &mealRepo{db: db, log: repoLog}
}

func (mr *mealRepo) Create(ctx context.Context, tx *gorm.DB, meals []*types.Meal) ([]*types.Meal, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if len(meals) == 0 {
		return []*types.Meal{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (mr *mealRepo) GetByUserDateRange(ctx context.Context, tx *gorm.DB, userID uuid.UUID, start, end time.Time) ([]*types.Meal, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.Meal
	if err := transaction.WithContext(ctx).
		Preload("FoodItems").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

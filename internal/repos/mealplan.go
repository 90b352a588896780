package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/nutriplan-backend/internal/logger"
	"github.com/nutriplan/nutriplan-backend/internal/types"
)

type MealPlanRepo interface {
	Create(ctx context.Context, tx *gorm.DB, plans []*types.MealPlan) ([]*types.MealPlan, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, startsAfter, endsBefore *time.Time) ([]*types.MealPlan, error)
	GetCovering(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date time.Time) (*types.MealPlan, error)
}

type mealPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMealPlanRepo(db *gorm.DB, baseLog *logger.Logger) MealPlanRepo {
	repoLog := baseLog.With("repo", "MealPlanRepo")
	return &mealPlanRepo{db: db, log: repoLog}
}

func (mr *mealPlanRepo) Create(ctx context.Context, tx *gorm.DB, plans []*types.MealPlan) ([]*types.MealPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if len(plans) == 0 {
		return []*types.MealPlan{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (mr *mealPlanRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, startsAfter, endsBefore *time.Time) ([]*types.MealPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	query := transaction.WithContext(ctx).Where("user_id = ?", userID)
	if startsAfter != nil {
		query = query.Where("start_date >= ?", *startsAfter)
	}
	if endsBefore != nil {
		query = query.Where("end_date <= ?", *endsBefore)
	}
	var results []*types.MealPlan
	if err := query.Order("start_date asc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetCovering returns the plan whose [start_date, end_date] range contains
// the given date, or nil when none does.
func (mr *mealPlanRepo) GetCovering(ctx context.Context, tx *gorm.DB, userID uuid.UUID, date time.Time) (*types.MealPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.MealPlan
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, date, date).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

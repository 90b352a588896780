package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MealPlan struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"index;not null;column:user_id" json:"user_id"`
	User        *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	StartDate   time.Time      `gorm:"index;not null;column:start_date" json:"start_date"`
	EndDate     time.Time      `gorm:"index;not null;column:end_date" json:"end_date"`
	Goal        string         `gorm:"column:goal" json:"goal"`
	DailyTarget datatypes.JSON `gorm:"column:daily_nutrition_target" json:"daily_nutrition"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
}

func (MealPlan) TableName() string {
	return "meal_plan"
}

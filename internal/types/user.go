package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Email           string                      `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password        string                      `gorm:"not null;column:password" json:"-"`
	FirstName       string                      `gorm:"column:first_name" json:"first_name"`
	LastName        string                      `gorm:"column:last_name" json:"last_name"`
	Age             int                         `gorm:"column:age" json:"age"`
	Gender          string                      `gorm:"column:gender" json:"gender"`
	HeightCm        float64                     `gorm:"column:height_cm" json:"height_cm"`
	WeightKg        float64                     `gorm:"column:weight_kg" json:"weight_kg"`
	ActivityLevel   string                      `gorm:"column:activity_level" json:"activity_level"`
	HealthGoal      string                      `gorm:"column:health_goal" json:"health_goal"`
	TargetWeightKg  float64                     `gorm:"column:target_weight_kg" json:"target_weight_kg"`
	FoodPreferences datatypes.JSONSlice[string] `gorm:"column:food_preferences" json:"food_preferences"`
	Allergies       datatypes.JSONSlice[string] `gorm:"column:allergies" json:"allergies"`
	IsActive        bool                        `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt       time.Time                   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}

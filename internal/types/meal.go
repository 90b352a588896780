package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Meal struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"index;not null;column:user_id" json:"user_id"`
	User        *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Name        string         `gorm:"not null;column:name" json:"name"`
	Description string         `gorm:"column:description" json:"description"`
	MealType    string         `gorm:"not null;column:meal_type" json:"meal_type"`
	Date        time.Time      `gorm:"index;not null;column:date" json:"date"`
	Nutrition   datatypes.JSON `gorm:"column:nutrition_info" json:"nutrition"`
	FoodItems   []FoodItem     `gorm:"foreignKey:MealID;references:ID" json:"foods"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
}

func (Meal) TableName() string {
	return "meal"
}

type FoodItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	MealID    uuid.UUID      `gorm:"index;not null;column:meal_id" json:"meal_id"`
	Name      string         `gorm:"not null;column:name" json:"name"`
	Quantity  float64        `gorm:"not null;column:quantity" json:"quantity"`
	Unit      string         `gorm:"default:g;column:unit" json:"unit"`
	Nutrition datatypes.JSON `gorm:"column:nutrition_info" json:"nutrition"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (FoodItem) TableName() string {
	return "food_item"
}

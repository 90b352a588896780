package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/nutriplan-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetMe(c *gin.Context) {
	user, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusNotFound, "user_not_found", err)
		return
	}
	RespondOK(c, user)
}

func (uh *UserHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		FirstName       *string   `json:"first_name"`
		LastName        *string   `json:"last_name"`
		Age             *int      `json:"age"`
		Gender          *string   `json:"gender"`
		HeightCm        *float64  `json:"height_cm"`
		WeightKg        *float64  `json:"weight_kg"`
		ActivityLevel   *string   `json:"activity_level"`
		HealthGoal      *string   `json:"health_goal"`
		TargetWeightKg  *float64  `json:"target_weight_kg"`
		FoodPreferences *[]string `json:"food_preferences"`
		Allergies       *[]string `json:"allergies"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	user, err := uh.userService.UpdateProfile(c.Request.Context(), services.ProfileUpdate{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Age:             req.Age,
		Gender:          req.Gender,
		HeightCm:        req.HeightCm,
		WeightKg:        req.WeightKg,
		ActivityLevel:   req.ActivityLevel,
		HealthGoal:      req.HealthGoal,
		TargetWeightKg:  req.TargetWeightKg,
		FoodPreferences: req.FoodPreferences,
		Allergies:       req.Allergies,
	})
	if err != nil {
		RespondError(c, http.StatusBadRequest, "update_failed", err)
		return
	}
	RespondOK(c, user)
}

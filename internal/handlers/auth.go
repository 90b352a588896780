package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/nutriplan-backend/internal/services"
	"github.com/nutriplan/nutriplan-backend/internal/types"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email           string   `json:"email"`
		Password        string   `json:"password"`
		FirstName       string   `json:"first_name"`
		LastName        string   `json:"last_name"`
		Age             int      `json:"age"`
		Gender          string   `json:"gender"`
		HeightCm        float64  `json:"height_cm"`
		WeightKg        float64  `json:"weight_kg"`
		ActivityLevel   string   `json:"activity_level"`
		HealthGoal      string   `json:"health_goal"`
		TargetWeightKg  float64  `json:"target_weight_kg"`
		FoodPreferences []string `json:"food_preferences"`
		Allergies       []string `json:"allergies"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	user := types.User{
		Email:           req.Email,
		Password:        req.Password,
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
		IsActive:        true,
	}
	token, err := ah.authService.RegisterUser(c.Request.Context(), &user)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "registration_failed", err)
		return
	}
	RespondCreated(c, gin.H{"access_token": token, "token_type": "bearer"})
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	token, err := ah.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "login_failed", err)
		return
	}
	RespondOK(c, gin.H{"access_token": token, "token_type": "bearer"})
}

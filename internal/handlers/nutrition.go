package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/nutriplan-backend/internal/services"
)

type NutritionHandler struct {
	nutritionService services.NutritionService
}

func NewNutritionHandler(nutritionService services.NutritionService) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

func (nh *NutritionHandler) Analyze(c *gin.Context) {
	var req struct {
		Foods []services.FoodQuery `json:"foods"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	RespondOK(c, nh.nutritionService.Analyze(c.Request.Context(), req.Foods))
}

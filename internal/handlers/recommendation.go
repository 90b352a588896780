package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/nutriplan-backend/internal/engine"
	"github.com/nutriplan/nutriplan-backend/internal/services"
)

type RecommendationHandler struct {
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

func (rh *RecommendationHandler) Get(c *gin.Context) {
	mealType, ok := engine.ParseMealType(c.Query("meal_type"))
	if !ok {
		RespondError(c, http.StatusBadRequest, "invalid_meal_type", errors.New("meal_type must be breakfast, lunch, dinner or snack"))
		return
	}
	meals, err := rh.recommendationService.RecommendForCurrentUser(c.Request.Context(), mealType)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, meals)
}

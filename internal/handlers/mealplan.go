package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/nutriplan-backend/internal/engine"
	"github.com/nutriplan/nutriplan-backend/internal/services"
)

type MealPlanHandler struct {
	mealPlanService services.MealPlanService
}

func NewMealPlanHandler(mealPlanService services.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService}
}

func (mh *MealPlanHandler) List(c *gin.Context) {
	startsAfter, ok := optionalDateQuery(c, "start_date")
	if !ok {
		return
	}
	endsBefore, ok := optionalDateQuery(c, "end_date")
	if !ok {
		return
	}
	plans, err := mh.mealPlanService.ListPlans(c.Request.Context(), startsAfter, endsBefore)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, plans)
}

func (mh *MealPlanHandler) Create(c *gin.Context) {
	var req struct {
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
		Goal      string    `json:"goal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	plan, err := mh.mealPlanService.CreatePlan(c.Request.Context(), req.StartDate, req.EndDate, req.Goal)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, plan)
}

func (mh *MealPlanHandler) Generate(c *gin.Context) {
	start, ok := requiredDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := requiredDateQuery(c, "end_date")
	if !ok {
		return
	}
	goal := c.Query("goal")

	result, err := mh.mealPlanService.GeneratePlan(c.Request.Context(), start, end, goal)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, result)
}

func (mh *MealPlanHandler) CreateMeal(c *gin.Context) {
	var req struct {
		Name        string           `json:"name"`
		Description string           `json:"description"`
		MealType    string           `json:"meal_type"`
		Date        time.Time        `json:"date"`
		Nutrition   *engine.Estimate `json:"nutrition"`
		Foods       []struct {
			Name      string           `json:"name"`
			Quantity  float64          `json:"quantity"`
			Unit      string           `json:"unit"`
			Nutrition *engine.Estimate `json:"nutrition"`
		} `json:"foods"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	mealType, ok := engine.ParseMealType(req.MealType)
	if !ok {
		RespondError(c, http.StatusBadRequest, "invalid_meal_type", errors.New("meal_type must be breakfast, lunch, dinner or snack"))
		return
	}
	input := services.MealInput{
		Name:        req.Name,
		Description: req.Description,
		MealType:    mealType,
		Date:        req.Date,
		Nutrition:   req.Nutrition,
	}
	for _, food := range req.Foods {
		input.Foods = append(input.Foods, services.FoodInput{
			Name:      food.Name,
			Quantity:  food.Quantity,
			Unit:      food.Unit,
			Nutrition: food.Nutrition,
		})
	}
	meal, err := mh.mealPlanService.CreateMeal(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, meal)
}

func optionalDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := parseDate(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_date", err)
		return nil, false
	}
	return &t, true
}

func requiredDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		RespondError(c, http.StatusBadRequest, "missing_date", errors.New(name+" query parameter is required"))
		return time.Time{}, false
	}
	t, err := parseDate(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_date", err)
		return time.Time{}, false
	}
	return t, true
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nutriplan/nutriplan-backend/internal/engine"
	"github.com/nutriplan/nutriplan-backend/internal/logger"
	"github.com/nutriplan/nutriplan-backend/internal/utils"
)

// NutritionProvider resolves per-quantity macro data for a food name.
// A nil estimate with a nil error means the provider has no answer.
type NutritionProvider interface {
	Lookup(ctx context.Context, foodName string, quantityGrams float64) (*engine.Estimate, error)
	Name() string
}

type FoodQuery struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type NutritionService interface {
	GetNutritionInfo(ctx context.Context, foodName string, quantityGrams float64) *engine.Estimate
	Analyze(ctx context.Context, foods []FoodQuery) engine.Estimate
}

type nutritionService struct {
	log       *logger.Logger
	providers []NutritionProvider
	cache     *redis.Client
	cacheTTL  time.Duration
}

// NewNutritionService builds the provider chain from env configuration.
// Providers without credentials are skipped; rdb may be nil, in which case
// lookups always go to the providers.
func NewNutritionService(log *logger.Logger, rdb *redis.Client) NutritionService {
	serviceLog := log.With("service", "NutritionService")
	httpClient := &http.Client{Timeout: 10 * time.Second}

	var providers []NutritionProvider
	if appID, apiKey := utils.GetEnv("NUTRITIONIX_APP_ID", "", log), utils.GetEnv("NUTRITIONIX_API_KEY", "", log); appID != "" && apiKey != "" {
		providers = append(providers, &nutritionixProvider{
			client:  httpClient,
			baseURL: utils.GetEnv("NUTRITIONIX_BASE_URL", "https://trackapi.nutritionix.com/v2", log),
			appID:   appID,
			apiKey:  apiKey,
		})
	}
	if appID, apiKey := utils.GetEnv("EDAMAM_APP_ID", "", log), utils.GetEnv("EDAMAM_API_KEY", "", log); appID != "" && apiKey != "" {
		providers = append(providers, &edamamProvider{
			client:  httpClient,
			baseURL: utils.GetEnv("EDAMAM_BASE_URL", "https://api.edamam.com/api", log),
			appID:   appID,
			apiKey:  apiKey,
		})
	}
	if apiKey := utils.GetEnv("USDA_API_KEY", "", log); apiKey != "" {
		providers = append(providers, &usdaProvider{
			client:  httpClient,
			baseURL: utils.GetEnv("USDA_BASE_URL", "https://api.nal.usda.gov/fdc/v1", log),
			apiKey:  apiKey,
		})
	}
	serviceLog.Info("Nutrition provider chain configured", "providers", len(providers))

	return &nutritionService{
		log:       serviceLog,
		providers: providers,
		cache:     rdb,
		cacheTTL:  24 * time.Hour,
	}
}

// GetNutritionInfo walks the provider chain, first hit wins. Per-provider
// failures are logged and treated as "no answer"; total failure returns nil.
func (ns *nutritionService) GetNutritionInfo(ctx context.Context, foodName string, quantityGrams float64) *engine.Estimate {
	if cached := ns.cacheGet(ctx, foodName, quantityGrams); cached != nil {
		return cached
	}
	for _, provider := range ns.providers {
		estimate, err := provider.Lookup(ctx, foodName, quantityGrams)
		if err != nil {
			ns.log.Warn("Nutrition provider lookup failed", "provider", provider.Name(), "food", foodName, "error", err)
			continue
		}
		if estimate != nil {
			ns.cacheSet(ctx, foodName, quantityGrams, estimate)
			return estimate
		}
	}
	return nil
}

// referencePortionGrams is the portion size Analyze looks up so that
// per-food results can be scaled linearly by the requested quantity.
const referencePortionGrams = 100.0

// Analyze aggregates provider data for a list of foods, scaling per-100g
// macros by each food's quantity. Foods with no provider answer contribute
// nothing; an empty or fully-unresolved list yields a zero-valued estimate.
func (ns *nutritionService) Analyze(ctx context.Context, foods []FoodQuery) engine.Estimate {
	var total engine.Estimate
	var sugar, sodium float64
	for _, food := range foods {
		info := ns.GetNutritionInfo(ctx, food.Name, referencePortionGrams)
		if info == nil {
			continue
		}
		scale := food.Quantity / referencePortionGrams
		total.Calories += info.Calories * scale
		total.Protein += info.Protein * scale
		total.Carbohydrates += info.Carbohydrates * scale
		total.Fat += info.Fat * scale
		total.Fiber += info.Fiber * scale
		if info.Sugar != nil {
			sugar += *info.Sugar * scale
		}
		if info.Sodium != nil {
			sodium += *info.Sodium * scale
		}
	}
	total.Sugar = &sugar
	total.Sodium = &sodium
	return total
}

func cacheKey(foodName string, quantityGrams float64) string {
	return fmt.Sprintf("nutrition:%s:%g", foodName, quantityGrams)
}

func (ns *nutritionService) cacheGet(ctx context.Context, foodName string, quantityGrams float64) *engine.Estimate {
	if ns.cache == nil {
		return nil
	}
	raw, err := ns.cache.Get(ctx, cacheKey(foodName, quantityGrams)).Bytes()
	if err != nil {
		return nil
	}
	var estimate engine.Estimate
	if err := json.Unmarshal(raw, &estimate); err != nil {
		return nil
	}
	return &estimate
}

func (ns *nutritionService) cacheSet(ctx context.Context, foodName string, quantityGrams float64, estimate *engine.Estimate) {
	if ns.cache == nil {
		return
	}
	raw, err := json.Marshal(estimate)
	if err != nil {
		return
	}
	if err := ns.cache.Set(ctx, cacheKey(foodName, quantityGrams), raw, ns.cacheTTL).Err(); err != nil {
		ns.log.Debug("Nutrition cache write failed", "error", err)
	}
}

type nutritionixProvider struct {
	client  *http.Client
	baseURL string
	appID   string
	apiKey  string
}

func (p *nutritionixProvider) Name() string { return "nutritionix" }

func (p *nutritionixProvider) Lookup(ctx context.Context, foodName string, quantityGrams float64) (*engine.Estimate, error) {
	body, err := json.Marshal(map[string]string{
		"query": fmt.Sprintf("%gg %s", quantityGrams, foodName),
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/natural/nutrients", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-app-id", p.appID)
	req.Header.Set("x-app-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutritionix returned status %d", resp.StatusCode)
	}

	var payload struct {
		Foods []struct {
			Calories float64  `json:"nf_calories"`
			Protein  float64  `json:"nf_protein"`
			Carbs    float64  `json:"nf_total_carbohydrate"`
			Fat      float64  `json:"nf_total_fat"`
			Fiber    float64  `json:"nf_dietary_fiber"`
			Sugar    *float64 `json:"nf_sugars"`
			Sodium   *float64 `json:"nf_sodium"`
		} `json:"foods"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload.Foods) == 0 {
		return nil, nil
	}
	food := payload.Foods[0]
	return &engine.Estimate{
		Calories:      food.Calories,
		Protein:       food.Protein,
		Carbohydrates: food.Carbs,
		Fat:           food.Fat,
		Fiber:         food.Fiber,
		Sugar:         food.Sugar,
		Sodium:        food.Sodium,
	}, nil
}

type edamamProvider struct {
	client  *http.Client
	baseURL string
	appID   string
	apiKey  string
}

func (p *edamamProvider) Name() string { return "edamam" }

func (p *edamamProvider) Lookup(ctx context.Context, foodName string, quantityGrams float64) (*engine.Estimate, error) {
	params := url.Values{}
	params.Set("ingr", fmt.Sprintf("%gg %s", quantityGrams, foodName))
	params.Set("app_id", p.appID)
	params.Set("app_key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/food-database/v2/parser?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edamam returned status %d", resp.StatusCode)
	}

	var payload struct {
		Parsed []struct {
			Food struct {
				Nutrients map[string]float64 `json:"nutrients"`
			} `json:"food"`
		} `json:"parsed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload.Parsed) == 0 {
		return nil, nil
	}
	nutrients := payload.Parsed[0].Food.Nutrients
	estimate := &engine.Estimate{
		Calories:      nutrients["ENERC_KCAL"],
		Protein:       nutrients["PROCNT"],
		Carbohydrates: nutrients["CHOCDF"],
		Fat:           nutrients["FAT"],
		Fiber:         nutrients["FIBTG"],
	}
	if sugar, ok := nutrients["SUGAR"]; ok {
		estimate.Sugar = &sugar
	}
	if sodium, ok := nutrients["NA"]; ok {
		estimate.Sodium = &sodium
	}
	return estimate, nil
}

type usdaProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func (p *usdaProvider) Name() string { return "usda" }

func (p *usdaProvider) Lookup(ctx context.Context, foodName string, quantityGrams float64) (*engine.Estimate, error) {
	params := url.Values{}
	params.Set("query", foodName)
	params.Set("api_key", p.apiKey)
	params.Set("pageSize", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/foods/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usda search returned status %d", resp.StatusCode)
	}

	var search struct {
		Foods []struct {
			FdcID         int64 `json:"fdcId"`
			FoodNutrients []struct {
				NutrientName string  `json:"nutrientName"`
				Value        float64 `json:"value"`
			} `json:"foodNutrients"`
		} `json:"foods"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, err
	}
	if len(search.Foods) == 0 {
		return nil, nil
	}

	nutrients := map[string]float64{}
	for _, n := range search.Foods[0].FoodNutrients {
		nutrients[n.NutrientName] = n.Value
	}

	// USDA values are per 100g.
	scale := quantityGrams / 100
	estimate := &engine.Estimate{
		Calories:      nutrients["Energy"] * scale,
		Protein:       nutrients["Protein"] * scale,
		Carbohydrates: nutrients["Carbohydrate, by difference"] * scale,
		Fat:           nutrients["Total lipid (fat)"] * scale,
		Fiber:         nutrients["Fiber, total dietary"] * scale,
	}
	if sugar, ok := nutrients["Sugars, total including NLEA"]; ok {
		sugar *= scale
		estimate.Sugar = &sugar
	}
	if sodium, ok := nutrients["Sodium, Na"]; ok {
		sodium *= scale
		estimate.Sodium = &sodium
	}
	return estimate, nil
}

package engine

import (
	"math"
	"sort"
	"strings"
)

// Scoring point values for corpus matching. Declared as named constants so
// tests can assert on them directly.
const (
	scoreAgeClose    = 10 // |Δage| <= 5
	scoreAgeNear     = 5  // |Δage| <= 10
	scoreAgeFar      = 2  // |Δage| <= 15
	scoreBMIClose    = 10 // |Δbmi| <= 1
	scoreBMINear     = 5  // |Δbmi| <= 2
	scoreBMIFar      = 2  // |Δbmi| <= 3
	scoreDiseaseHit  = 15 // same disease category
	scoreDiseaseNone = 10 // both None
	scoreActivity    = 10 // exact tier match
	scoreActivityCI  = 8  // case-insensitive tier match
	scoreRestrExact  = 8  // identical restriction set
	scoreRestrAny    = 5  // any overlap
	scoreCuisine     = 5
	scoreGender      = 3

	// allergyVeto marks a record carrying one of the profile's declared
	// allergens. Safety rule: such records are always excluded, never
	// merely down-ranked.
	allergyVeto = -100

	maxMatches           = 10
	defaultDailyCalories = 2000
)

// ScoredCandidate is a corpus record that scored above zero for a query,
// enriched with the derived meal for the requested meal type. Scores are
// ephemeral and recomputed per query.
type ScoredCandidate struct {
	Score              int
	Name               string
	Calories           float64
	DailyCalories      float64
	DietRecommendation string
	Disease            string
	Cuisine            string
	Tags               []string
}

// FindMatches scores every corpus record against the normalized profile and
// returns at most 10 candidates in descending score order. Ties keep corpus
// iteration order (stable sort), which makes results deterministic for a
// given corpus; tie order across shuffled corpora is implementation-defined.
func (c *Corpus) FindMatches(p NormalizedProfile, mealType MealType) []ScoredCandidate {
	if c == nil || len(c.records) == 0 {
		return nil
	}

	share, ok := MealCalorieShare[mealType]
	if !ok {
		share = MealCalorieShare[MealBreakfast]
	}

	var candidates []ScoredCandidate
	for _, rec := range c.records {
		score := scoreRecord(p, rec)
		if score <= 0 {
			continue
		}
		daily := rec.DailyCalories
		if daily <= 0 {
			daily = defaultDailyCalories
		}
		cuisine := rec.Cuisine
		if cuisine == "" {
			cuisine = p.Cuisine
		}
		dietRec := rec.DietRecommendation
		if dietRec == "" {
			dietRec = "Balanced"
		}
		candidates = append(candidates, ScoredCandidate{
			Score:              score,
			Name:               mealName(mealType, dietRec, cuisine, rec.Disease),
			Calories:           math.Round(daily * share),
			DailyCalories:      math.Round(daily),
			DietRecommendation: dietRec,
			Disease:            rec.Disease,
			Cuisine:            cuisine,
			Tags:               mealTags(dietRec, rec.Disease, rec.Restrictions),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > maxMatches {
		candidates = candidates[:maxMatches]
	}
	return candidates
}

func scoreRecord(p NormalizedProfile, rec ReferenceRecord) int {
	score := 0

	if p.Age > 0 && rec.Age > 0 {
		switch diff := abs(p.Age - rec.Age); {
		case diff <= 5:
			score += scoreAgeClose
		case diff <= 10:
			score += scoreAgeNear
		case diff <= 15:
			score += scoreAgeFar
		}
	}

	if p.BMI > 0 && rec.BMI > 0 {
		switch diff := math.Abs(p.BMI - rec.BMI); {
		case diff <= 1:
			score += scoreBMIClose
		case diff <= 2:
			score += scoreBMINear
		case diff <= 3:
			score += scoreBMIFar
		}
	}

	if rec.Disease == string(p.Disease) {
		if p.Disease == DiseaseNone {
			score += scoreDiseaseNone
		} else {
			score += scoreDiseaseHit
		}
	}

	if rec.Activity == string(p.Activity) {
		score += scoreActivity
	} else if strings.EqualFold(rec.Activity, string(p.Activity)) {
		score += scoreActivityCI
	}

	score += scoreRestrictions(p.Restrictions, rec.Restrictions)

	// Hard allergy veto, evaluated after the additive factors so a high
	// similarity score can never rescue an allergen-listed record.
	if len(p.Allergies) > 0 && len(rec.Allergies) > 0 && tokensIntersect(p.Allergies, rec.Allergies) {
		return allergyVeto
	}

	if strings.EqualFold(rec.Cuisine, p.Cuisine) {
		score += scoreCuisine
	}

	if p.Gender != "" && rec.Gender != "" && strings.EqualFold(rec.Gender, p.Gender) {
		score += scoreGender
	}

	return score
}

// scoreRestrictions compares the profile's derived restriction set with the
// record's. Both empty counts as an exact match.
func scoreRestrictions(profile []Restriction, record []string) int {
	pset := map[string]struct{}{}
	for _, r := range profile {
		if r != RestrictionNone {
			pset[strings.ToLower(string(r))] = struct{}{}
		}
	}
	rset := map[string]struct{}{}
	for _, r := range record {
		rset[strings.ToLower(r)] = struct{}{}
	}

	if len(pset) == len(rset) {
		exact := true
		for k := range pset {
			if _, ok := rset[k]; !ok {
				exact = false
				break
			}
		}
		if exact {
			return scoreRestrExact
		}
	}
	if len(pset) > 0 && len(rset) > 0 {
		for k := range pset {
			if _, ok := rset[k]; ok {
				return scoreRestrAny
			}
		}
	}
	return 0
}

func tokensIntersect(a, b []string) bool {
	set := map[string]struct{}{}
	for _, s := range a {
		set[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[strings.ToLower(strings.TrimSpace(s))]; ok {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

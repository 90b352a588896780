package engine

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nutriplan/nutriplan-backend/internal/logger"
)

func writeCorpusFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.csv")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadCorpusMissingFile(t *testing.T) {
	c := LoadCorpus(filepath.Join(t.TempDir(), "does-not-exist.csv"), logger.NewNop())
	if c.Len() != 0 {
		t.Fatalf("expected empty corpus, got %d records", c.Len())
	}
	if got := c.FindMatches(NormalizeProfile(Profile{Age: 30}), MealLunch); got != nil {
		t.Fatalf("expected no matches from empty corpus, got %d", len(got))
	}
}

func TestLoadCorpus(t *testing.T) {
	// Columns deliberately not in struct order; the loader maps by header name.
	path := writeCorpusFixture(t, `Gender,Age,BMI,Disease_Type,Physical_Activity_Level,Dietary_Restrictions,Allergies,Preferred_Cuisine,Daily_Caloric_Intake,Diet_Recommendation
Male,30,24.5,Diabetes,Sedentary,Low_Sugar,"Peanuts, Shellfish",Indian,2000,Balanced
`)
	c := LoadCorpus(path, logger.NewNop())
	if c.Len() != 1 {
		t.Fatalf("record count = %d, want 1", c.Len())
	}
	want := ReferenceRecord{
		Age:                30,
		Gender:             "Male",
		BMI:                24.5,
		Disease:            "Diabetes",
		Activity:           "Sedentary",
		Restrictions:       []string{"Low_Sugar"},
		Allergies:          []string{"Peanuts", "Shellfish"},
		Cuisine:            "Indian",
		DailyCalories:      2000,
		DietRecommendation: "Balanced",
	}
	if !reflect.DeepEqual(c.records[0], want) {
		t.Fatalf("record = %+v, want %+v", c.records[0], want)
	}
}

func TestLoadCorpusBadNumericCellsKeepRow(t *testing.T) {
	path := writeCorpusFixture(t, `Age,Gender,BMI,Disease_Type,Physical_Activity_Level,Dietary_Restrictions,Allergies,Preferred_Cuisine,Daily_Caloric_Intake,Diet_Recommendation
unknown,Female,,Obesity,Moderate,Low_Sodium,None,Chinese,n/a,Low_Carb
40,Male,26.1,Hypertension,Active,Low_Sodium,None,Mexican,2200,Low_Sodium
`)
	c := LoadCorpus(path, logger.NewNop())
	if c.Len() != 2 {
		t.Fatalf("record count = %d, want 2", c.Len())
	}
	bad := c.records[0]
	if bad.Age != 0 || bad.BMI != 0 || bad.DailyCalories != 0 {
		t.Fatalf("bad numeric cells should zero, got %+v", bad)
	}
	if bad.Disease != "Obesity" || bad.Cuisine != "Chinese" {
		t.Fatalf("categorical cells lost on bad row: %+v", bad)
	}
	if c.records[1].Age != 40 {
		t.Fatalf("row after bad row not loaded: %+v", c.records[1])
	}
}

func TestLoadCorpusListCells(t *testing.T) {
	path := writeCorpusFixture(t, `Age,Gender,BMI,Disease_Type,Physical_Activity_Level,Dietary_Restrictions,Allergies,Preferred_Cuisine,Daily_Caloric_Intake,Diet_Recommendation
25,Female,21.0,None,Sedentary,None,,Italian,1800,Balanced
`)
	c := LoadCorpus(path, logger.NewNop())
	if c.Len() != 1 {
		t.Fatalf("record count = %d, want 1", c.Len())
	}
	if c.records[0].Restrictions != nil {
		t.Fatalf("None restriction cell should yield nil, got %v", c.records[0].Restrictions)
	}
	if c.records[0].Allergies != nil {
		t.Fatalf("empty allergy cell should yield nil, got %v", c.records[0].Allergies)
	}
}

func TestSplitListCell(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "none", in: "None", want: nil},
		{name: "none_lowercase", in: "none", want: nil},
		{name: "single", in: "Peanuts", want: []string{"Peanuts"}},
		{name: "list_with_spaces", in: "Peanuts, Shellfish , Dairy", want: []string{"Peanuts", "Shellfish", "Dairy"}},
		{name: "trailing_comma", in: "Peanuts,", want: []string{"Peanuts"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := splitListCell(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("splitListCell(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

package engine

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nutriplan/nutriplan-backend/internal/logger"
)

// ReferenceRecord is one row of the static diet-recommendations corpus.
// Numeric fields are 0 when the source cell was missing or unparseable;
// scoring treats 0 as "no contribution".
type ReferenceRecord struct {
	Age                int
	Gender             string
	BMI                float64
	Disease            string
	Activity           string
	Restrictions       []string
	Allergies          []string
	Cuisine            string
	DailyCalories      float64
	DietRecommendation string
}

// Corpus holds the reference dataset. It is loaded once and read-only
// afterwards, so concurrent matching needs no locking.
type Corpus struct {
	records []ReferenceRecord
}

func NewCorpus(records []ReferenceRecord) *Corpus {
	return &Corpus{records: records}
}

func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// LoadCorpus reads the corpus CSV. A missing or unreadable file is not
// fatal: it logs a warning and returns an empty corpus so the fallback
// catalog tier still functions. A malformed row never aborts the load.
func LoadCorpus(path string, log *logger.Logger) *Corpus {
	f, err := os.Open(path)
	if err != nil {
		log.Warn("Corpus file not available, continuing with empty corpus", "path", path, "error", err)
		return &Corpus{}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		log.Warn("Corpus file unreadable, continuing with empty corpus", "path", path, "error", err)
		return &Corpus{}
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	var records []ReferenceRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Debug("Skipping malformed corpus row", "error", err)
			continue
		}
		cell := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		records = append(records, ReferenceRecord{
			Age:                parseIntCell(cell("Age")),
			Gender:             cell("Gender"),
			BMI:                parseFloatCell(cell("BMI")),
			Disease:            cell("Disease_Type"),
			Activity:           cell("Physical_Activity_Level"),
			Restrictions:       splitListCell(cell("Dietary_Restrictions")),
			Allergies:          splitListCell(cell("Allergies")),
			Cuisine:            cell("Preferred_Cuisine"),
			DailyCalories:      parseFloatCell(cell("Daily_Caloric_Intake")),
			DietRecommendation: cell("Diet_Recommendation"),
		})
	}

	log.Info("Loaded diet recommendations corpus", "path", path, "records", len(records))
	return &Corpus{records: records}
}

func parseIntCell(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func parseFloatCell(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// splitListCell splits a comma-separated corpus cell. "None" and empty cells
// yield nil.
func splitListCell(s string) []string {
	if s == "" || strings.EqualFold(s, "none") {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

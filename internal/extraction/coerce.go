package extraction

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/zense17/classyncserver/internal/catalog"
	"github.com/zense17/classyncserver/internal/models"
)

// DecodeSubjects decodes a recognizer payload into subjects, coercing the
// best-effort fields the model tends to get loose with: unit counts may come
// back as numbers or strings (fallback 0), names default to "Unknown" and a
// row with no code at all gets an UNKNOWN_<n> placeholder so it survives
// hydration and deduplication without colliding with real codes.
func DecodeSubjects(data []byte) ([]models.Subject, error) {
	var payload struct {
		Subjects []map[string]any `json:"subjects"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode recognizer payload: %w", err)
	}

	subjects := make([]models.Subject, 0, len(payload.Subjects))
	for i, row := range payload.Subjects {
		code := strings.TrimSpace(stringField(row, "code"))
		if code == "" {
			code = fmt.Sprintf("UNKNOWN_%d", i+1)
		}
		name := strings.TrimSpace(stringField(row, "name"))
		if name == "" {
			name = "Unknown"
		}
		subjects = append(subjects, models.Subject{
			Code:         code,
			Name:         name,
			LectureUnits: intField(row, "lecture_units"),
			LabUnits:     intField(row, "lab_units"),
			TotalUnits:   intField(row, "total_units"),
			YearLevel:    catalog.YearLevel(strings.TrimSpace(stringField(row, "year_level"))),
			Term:         catalog.Term(strings.TrimSpace(stringField(row, "term"))),
		})
	}
	return subjects, nil
}

func stringField(row map[string]any, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

func intField(row map[string]any, key string) int {
	switch v := row[key].(type) {
	case float64:
		return int(v)
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

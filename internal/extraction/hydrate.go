package extraction

import (
	"github.com/zense17/classyncserver/internal/catalog"
	"github.com/zense17/classyncserver/internal/models"
)

// Hydrate rewrites recognized subjects with the catalog's canonical values
// wherever a normalized code match exists. Unmatched subjects pass through
// unchanged: free electives, OCR noise and codes outside the curriculum are a
// normal outcome, not an error. The output preserves order and length.
func Hydrate(cat *catalog.Catalog, subjects []models.Subject) []models.Subject {
	hydrated := make([]models.Subject, 0, len(subjects))
	for _, subject := range subjects {
		entry, ok := cat.Lookup(subject.Code)
		if !ok {
			hydrated = append(hydrated, subject)
			continue
		}
		hydrated = append(hydrated, models.Subject{
			Code:         entry.Code,
			Name:         entry.Name,
			LectureUnits: entry.LectureUnits,
			LabUnits:     entry.LabUnits,
			TotalUnits:   entry.TotalUnits,
			YearLevel:    entry.YearLevel,
			Term:         entry.Term,
		})
	}
	return hydrated
}

package dataset

import (
	"github.com/zense17/classyncserver/internal/catalog"
	"github.com/zense17/classyncserver/internal/models"
)

// RecognizedSubject is one raw subject row as a recognizer transcribed it,
// before hydration.
type RecognizedSubject struct {
	Code         string `json:"code" parquet:"code"`
	Name         string `json:"name" parquet:"name"`
	LectureUnits int    `json:"lecture_units" parquet:"lecture_units"`
	LabUnits     int    `json:"lab_units" parquet:"lab_units"`
	TotalUnits   int    `json:"total_units" parquet:"total_units"`
	YearLevel    string `json:"year_level" parquet:"year_level"`
	Term         string `json:"term" parquet:"term"`
}

// ImageRecord is one image's worth of recognized subjects.
type ImageRecord struct {
	Subjects []RecognizedSubject `json:"subjects" parquet:"subjects,list"`
}

// Record is one labeled extraction: the raw recognized batches for a
// submission plus the tier and success flag a reviewer assigned to it.
type Record struct {
	ID              string        `json:"id" parquet:"id"`
	Images          []ImageRecord `json:"images" parquet:"images,list"`
	ExpectedTier    string        `json:"expected_tier" parquet:"expected_tier"`
	ExpectedSuccess bool          `json:"expected_success" parquet:"expected_success"`
}

// ToSubjects converts an image record to engine subjects.
func (r *ImageRecord) ToSubjects() []models.Subject {
	subjects := make([]models.Subject, 0, len(r.Subjects))
	for _, s := range r.Subjects {
		subjects = append(subjects, models.Subject{
			Code:         s.Code,
			Name:         s.Name,
			LectureUnits: s.LectureUnits,
			LabUnits:     s.LabUnits,
			TotalUnits:   s.TotalUnits,
			YearLevel:    catalog.YearLevel(s.YearLevel),
			Term:         catalog.Term(s.Term),
		})
	}
	return subjects
}

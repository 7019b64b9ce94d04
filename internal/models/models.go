package models

import (
	"time"

	"github.com/zense17/classyncserver/internal/catalog"
)

// Subject is one row of an academic document as recognized, or as canonically
// known once hydrated against the curriculum catalog.
type Subject struct {
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	LectureUnits int               `json:"lecture_units"`
	LabUnits     int               `json:"lab_units"`
	TotalUnits   int               `json:"total_units"`
	YearLevel    catalog.YearLevel `json:"year_level"`
	Term         catalog.Term      `json:"term"`
}

// ImageValidation is the per-image judgment of one recognized batch.
type ImageValidation struct {
	IsGood       bool     `json:"is_good"`
	Issues       []string `json:"issues"`
	Warnings     []string `json:"warnings"`
	SubjectCount int      `json:"subject_count"`
}

// QualityTier is the coarse confidence classification of a merged extraction.
type QualityTier string

const (
	TierPoor      QualityTier = "Poor"
	TierModerate  QualityTier = "Moderate"
	TierGood      QualityTier = "Good"
	TierExcellent QualityTier = "Excellent"
)

// OverallValidation is the judgment across the full deduplicated document.
type OverallValidation struct {
	Success      bool                      `json:"success"`
	QualityTier  QualityTier               `json:"quality_tier"`
	TotalCount   int                       `json:"total_count"`
	Issues       []string                  `json:"issues"`
	Warnings     []string                  `json:"warnings"`
	MissingCodes []string                  `json:"missing_codes"`
	CountsByYear map[catalog.YearLevel]int `json:"counts_by_year"`
}

// Report is the final result of one extraction request.
type Report struct {
	ID           string                    `json:"id"`
	Program      string                    `json:"program"`
	Success      bool                      `json:"success"`
	QualityTier  QualityTier               `json:"quality_tier"`
	Subjects     []Subject                 `json:"subjects"`
	Images       []ImageValidation         `json:"images"`
	Issues       []string                  `json:"issues"`
	Warnings     []string                  `json:"warnings"`
	MissingCodes []string                  `json:"missing_codes"`
	CountsByYear map[catalog.YearLevel]int `json:"counts_by_year"`
	CreatedAt    time.Time                 `json:"created_at"`
}

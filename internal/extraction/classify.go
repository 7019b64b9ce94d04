package extraction

import (
	"fmt"

	"github.com/zense17/classyncserver/internal/catalog"
	"github.com/zense17/classyncserver/internal/models"
)

// ClassifyOverall computes the final confidence tier for the deduplicated
// subject set. Thresholds are relative to the catalog's full subject count:
// a complete scan is Excellent, up to 4 missing is Good, up to 9 missing is
// Moderate provided every submitted image passed its own validation, and
// anything worse is Poor. A single partial but individually good image is
// re-tiered to Moderate rather than failed outright.
func ClassifyOverall(deduped []models.Subject, perImage []models.ImageValidation, cat *catalog.Catalog, anchor AnchorRule) models.OverallValidation {
	total := cat.Size()
	count := len(deduped)

	countsByYear := make(map[catalog.YearLevel]int)
	for _, subject := range deduped {
		countsByYear[subject.YearLevel]++
	}

	allGood := len(perImage) > 0
	for _, validation := range perImage {
		if !validation.IsGood {
			allGood = false
		}
	}
	singleGood := len(perImage) == 1 && perImage[0].IsGood

	var issues []string
	var warnings []string
	var tier models.QualityTier
	var success bool

	switch {
	case count >= total:
		tier = models.TierExcellent
		success = true
	case count >= total-4:
		tier = models.TierGood
		success = true
		warnings = append(warnings, fmt.Sprintf(
			"%d of %d subjects recognized, %d missing", count, total, total-count))
	case count >= total-9:
		if allGood || singleGood {
			tier = models.TierModerate
			success = true
		} else {
			tier = models.TierPoor
			success = false
			issues = append(issues, fmt.Sprintf(
				"only %d of %d subjects recognized", count, total))
		}
	default:
		if singleGood {
			tier = models.TierModerate
			success = true
			warnings = append(warnings, fmt.Sprintf(
				"partial scan: a single image yielded %d of %d subjects", count, total))
		} else {
			tier = models.TierPoor
			success = false
			issues = append(issues, fmt.Sprintf(
				"only %d of %d subjects recognized, scan appears incomplete", count, total))
		}
	}

	dedupedKeys := make(map[string]struct{}, count)
	for _, subject := range deduped {
		dedupedKeys[catalog.NormalizeCode(subject.Code)] = struct{}{}
	}

	var missing []string

	// Structural checks apply only when the full two-part document was
	// submitted; a single image is by definition a partial view.
	if len(perImage) == 2 {
		for _, year := range catalog.YearLevels() {
			if countsByYear[year] == 0 {
				issues = append(issues, fmt.Sprintf("%s subjects are completely missing", year))
			}
		}
		if _, ok := dedupedKeys[catalog.NormalizeCode(anchor.Code)]; !ok {
			issues = append(issues, fmt.Sprintf(
				"%s (%s) was not found in either image", anchor.Code, anchor.Term))
			missing = append(missing, anchor.Code)
		}
	}

	// The missing set is always the full diff against the catalog, recomputed
	// last; it overwrites anything the anchor check recorded.
	missing = missing[:0]
	for _, code := range cat.Codes() {
		if _, ok := dedupedKeys[catalog.NormalizeCode(code)]; !ok {
			missing = append(missing, code)
		}
	}

	return models.OverallValidation{
		Success:      success,
		QualityTier:  tier,
		TotalCount:   count,
		Issues:       issues,
		Warnings:     warnings,
		MissingCodes: missing,
		CountsByYear: countsByYear,
	}
}

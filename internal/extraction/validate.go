package extraction

import (
	"fmt"

	"github.com/zense17/classyncserver/internal/catalog"
	"github.com/zense17/classyncserver/internal/models"
)

// ValidateSection scores one image's hydrated batch against the expectations
// for the logical section it represents. Cardinality shortfalls, per-year
// shortfalls and a missing anchor are issues; overages and a misplaced anchor
// are warnings. Warnings never block goodness.
func ValidateSection(subjects []models.Subject, rule SectionRule, section int) models.ImageValidation {
	var issues []string
	var warnings []string

	count := len(subjects)
	switch {
	case count < rule.MinSubjects:
		issues = append(issues, fmt.Sprintf(
			"image %d has only %d subjects, expected at least %d covering %s",
			section, count, rule.MinSubjects, rule.Description))
	case count > rule.MaxSubjects:
		warnings = append(warnings, fmt.Sprintf(
			"image %d has %d subjects, more than the expected %d; some rows may be duplicates",
			section, count, rule.MaxSubjects))
	}

	countsByYear := make(map[catalog.YearLevel]int)
	for _, subject := range subjects {
		countsByYear[subject.YearLevel]++
	}
	for _, year := range catalog.YearLevels() {
		minimum, required := rule.MinPerYear[year]
		if !required {
			continue
		}
		if countsByYear[year] < minimum {
			issues = append(issues, fmt.Sprintf(
				"image %d has %d %s subjects, expected at least %d",
				section, countsByYear[year], year, minimum))
		}
	}

	if rule.Anchor != nil {
		issues, warnings = checkAnchor(subjects, *rule.Anchor, section, issues, warnings)
	}

	// Issues are authoritative: any issue fails the image, warnings never do.
	return models.ImageValidation{
		IsGood:       len(issues) == 0,
		Issues:       issues,
		Warnings:     warnings,
		SubjectCount: count,
	}
}

func checkAnchor(subjects []models.Subject, anchor AnchorRule, section int, issues, warnings []string) ([]string, []string) {
	key := catalog.NormalizeCode(anchor.Code)
	for _, subject := range subjects {
		if catalog.NormalizeCode(subject.Code) != key {
			continue
		}
		if subject.Term != anchor.Term {
			warnings = append(warnings, fmt.Sprintf(
				"image %d lists %s under %q, expected %q",
				section, anchor.Code, subject.Term, anchor.Term))
		}
		return issues, warnings
	}
	issues = append(issues, fmt.Sprintf(
		"image %d is missing %s, the %s subject expected in this section",
		section, anchor.Code, anchor.Term))
	return issues, warnings
}

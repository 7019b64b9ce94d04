package extraction

import (
	"strings"
	"testing"

	"github.com/zense17/classyncserver/internal/catalog"
	"github.com/zense17/classyncserver/internal/models"
)

// firstSubjects returns the first n catalog entries as hydrated subjects.
func firstSubjects(t *testing.T, cat *catalog.Catalog, n int) []models.Subject {
	t.Helper()
	entries := cat.Entries()
	if n > len(entries) {
		t.Fatalf("catalog has only %d entries, requested %d", len(entries), n)
	}
	subjects := make([]models.Subject, 0, n)
	for _, entry := range entries[:n] {
		subjects = append(subjects, models.Subject{
			Code:         entry.Code,
			Name:         entry.Name,
			LectureUnits: entry.LectureUnits,
			LabUnits:     entry.LabUnits,
			TotalUnits:   entry.TotalUnits,
			YearLevel:    entry.YearLevel,
			Term:         entry.Term,
		})
	}
	return subjects
}

func goodImage() models.ImageValidation {
	return models.ImageValidation{IsGood: true}
}

func badImage() models.ImageValidation {
	return models.ImageValidation{IsGood: false, Issues: []string{"too few subjects"}}
}

func TestClassifyOverallTiers(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name        string
		count       int
		perImage    []models.ImageValidation
		wantTier    models.QualityTier
		wantSuccess bool
	}{
		{
			name:        "complete scan is excellent",
			count:       54,
			perImage:    []models.ImageValidation{goodImage(), goodImage()},
			wantTier:    models.TierExcellent,
			wantSuccess: true,
		},
		{
			name:        "three missing is good",
			count:       51,
			perImage:    []models.ImageValidation{goodImage(), goodImage()},
			wantTier:    models.TierGood,
			wantSuccess: true,
		},
		{
			name:        "seven missing with good images is moderate",
			count:       47,
			perImage:    []models.ImageValidation{goodImage(), goodImage()},
			wantTier:    models.TierModerate,
			wantSuccess: true,
		},
		{
			name:        "seven missing with bad images is poor",
			count:       47,
			perImage:    []models.ImageValidation{badImage(), badImage()},
			wantTier:    models.TierPoor,
			wantSuccess: false,
		},
		{
			name:        "single good partial scan is re-tiered moderate",
			count:       20,
			perImage:    []models.ImageValidation{goodImage()},
			wantTier:    models.TierModerate,
			wantSuccess: true,
		},
		{
			name:        "single bad partial scan is poor",
			count:       20,
			perImage:    []models.ImageValidation{badImage()},
			wantTier:    models.TierPoor,
			wantSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deduped := firstSubjects(t, cat, tt.count)
			overall := ClassifyOverall(deduped, tt.perImage, cat, SummerAnchor)

			if overall.QualityTier != tt.wantTier {
				t.Errorf("Tier = %s, want %s (issues: %v)", overall.QualityTier, tt.wantTier, overall.Issues)
			}
			if overall.Success != tt.wantSuccess {
				t.Errorf("Success = %v, want %v", overall.Success, tt.wantSuccess)
			}
			if overall.TotalCount != tt.count {
				t.Errorf("TotalCount = %d, want %d", overall.TotalCount, tt.count)
			}
		})
	}
}

func TestClassifyOverallGoodTierWarningCitesShortfall(t *testing.T) {
	cat := catalog.Default()
	deduped := firstSubjects(t, cat, 51)

	overall := ClassifyOverall(deduped, []models.ImageValidation{goodImage(), goodImage()}, cat, SummerAnchor)

	if len(overall.Warnings) == 0 {
		t.Fatal("Expected a shortfall warning")
	}
	if !strings.Contains(overall.Warnings[0], "3 missing") {
		t.Errorf("Warning should cite exactly 3 missing, got %q", overall.Warnings[0])
	}
}

func TestClassifyOverallSingleGoodPartialScanWarns(t *testing.T) {
	cat := catalog.Default()
	deduped := firstSubjects(t, cat, 20)

	overall := ClassifyOverall(deduped, []models.ImageValidation{goodImage()}, cat, SummerAnchor)

	if len(overall.Warnings) == 0 {
		t.Fatal("Expected a partial-scan warning")
	}
	if len(overall.Issues) != 0 {
		t.Errorf("Partial single-image scan should warn, not raise issues: %v", overall.Issues)
	}
}

func TestClassifyOverallMissingCodesCompleteness(t *testing.T) {
	cat := catalog.Default()
	deduped := firstSubjects(t, cat, 50)

	overall := ClassifyOverall(deduped, []models.ImageValidation{goodImage(), goodImage()}, cat, SummerAnchor)

	if len(overall.MissingCodes) != 4 {
		t.Fatalf("Expected 4 missing codes, got %v", overall.MissingCodes)
	}

	present := make(map[string]struct{})
	for _, subject := range deduped {
		present[catalog.NormalizeCode(subject.Code)] = struct{}{}
	}
	for _, code := range overall.MissingCodes {
		if _, ok := present[catalog.NormalizeCode(code)]; ok {
			t.Errorf("Code %q reported missing but present in deduped set", code)
		}
	}

	// The diff must cover every absent catalog code, not just anchor findings.
	expectedMissing := 0
	for _, code := range cat.Codes() {
		if _, ok := present[catalog.NormalizeCode(code)]; !ok {
			expectedMissing++
		}
	}
	if expectedMissing != len(overall.MissingCodes) {
		t.Errorf("MissingCodes has %d entries, catalog diff has %d", len(overall.MissingCodes), expectedMissing)
	}
}

func TestClassifyOverallYearCheckOnlyForTwoImages(t *testing.T) {
	cat := catalog.Default()
	// First 29 entries cover Year 1 and Year 2 only: Year 4 is absent.
	deduped := firstSubjects(t, cat, 29)

	hasYearIssue := func(issues []string) bool {
		for _, issue := range issues {
			if strings.Contains(issue, string(catalog.Year4)) && strings.Contains(issue, "completely missing") {
				return true
			}
		}
		return false
	}

	oneImage := ClassifyOverall(deduped, []models.ImageValidation{goodImage()}, cat, SummerAnchor)
	if hasYearIssue(oneImage.Issues) {
		t.Errorf("One-image submission should not raise year-completeness issues: %v", oneImage.Issues)
	}

	twoImages := ClassifyOverall(deduped, []models.ImageValidation{goodImage(), goodImage()}, cat, SummerAnchor)
	if !hasYearIssue(twoImages.Issues) {
		t.Errorf("Two-image submission missing Year 4 should raise an issue: %v", twoImages.Issues)
	}
}

func TestClassifyOverallAnchorCheckOnlyForTwoImages(t *testing.T) {
	cat := catalog.Default()
	// 51 entries in curriculum order include CS 195; drop it explicitly.
	var deduped []models.Subject
	for _, subject := range firstSubjects(t, cat, 51) {
		if catalog.NormalizeCode(subject.Code) == "CS195" {
			continue
		}
		deduped = append(deduped, subject)
	}

	hasAnchorIssue := func(issues []string) bool {
		for _, issue := range issues {
			if strings.Contains(issue, "CS 195") {
				return true
			}
		}
		return false
	}

	oneImage := ClassifyOverall(deduped, []models.ImageValidation{goodImage()}, cat, SummerAnchor)
	if hasAnchorIssue(oneImage.Issues) {
		t.Errorf("One-image submission should not raise the anchor issue: %v", oneImage.Issues)
	}

	twoImages := ClassifyOverall(deduped, []models.ImageValidation{goodImage(), goodImage()}, cat, SummerAnchor)
	if !hasAnchorIssue(twoImages.Issues) {
		t.Errorf("Two-image submission missing CS 195 should raise an issue: %v", twoImages.Issues)
	}

	found := false
	for _, code := range twoImages.MissingCodes {
		if code == "CS 195" {
			found = true
		}
	}
	if !found {
		t.Errorf("CS 195 should appear in MissingCodes: %v", twoImages.MissingCodes)
	}
}

func TestClassifyOverallCountsByYear(t *testing.T) {
	cat := catalog.Default()
	deduped := firstSubjects(t, cat, 54)

	overall := ClassifyOverall(deduped, []models.ImageValidation{goodImage(), goodImage()}, cat, SummerAnchor)

	expected := map[catalog.YearLevel]int{
		catalog.Year1: 14,
		catalog.Year2: 15,
		catalog.Year3: 14,
		catalog.Year4: 11,
	}
	for year, count := range expected {
		if overall.CountsByYear[year] != count {
			t.Errorf("CountsByYear[%s] = %d, want %d", year, overall.CountsByYear[year], count)
		}
	}
}

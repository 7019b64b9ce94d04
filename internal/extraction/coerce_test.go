package extraction

import (
	"testing"

	"github.com/zense17/classyncserver/internal/catalog"
)

func TestDecodeSubjects(t *testing.T) {
	payload := []byte(`{
		"subjects": [
			{"code": "CS 121", "name": "Discrete Structures 1", "lecture_units": 3, "lab_units": 0, "total_units": 3, "year_level": "1st Year", "term": "2nd Semester"},
			{"code": " CC 111 ", "name": "Intro to Computing", "lecture_units": "2", "lab_units": "1", "total_units": "3.0", "year_level": "1st Year", "term": "1st Semester"}
		]
	}`)

	subjects, err := DecodeSubjects(payload)
	if err != nil {
		t.Fatalf("DecodeSubjects failed: %v", err)
	}
	if len(subjects) != 2 {
		t.Fatalf("Expected 2 subjects, got %d", len(subjects))
	}

	first := subjects[0]
	if first.Code != "CS 121" || first.LectureUnits != 3 || first.TotalUnits != 3 {
		t.Errorf("Unexpected first subject: %+v", first)
	}
	if first.YearLevel != catalog.Year1 || first.Term != catalog.Term2 {
		t.Errorf("Unexpected placement: %s / %s", first.YearLevel, first.Term)
	}

	second := subjects[1]
	if second.Code != "CC 111" {
		t.Errorf("Code should be trimmed, got %q", second.Code)
	}
	if second.LectureUnits != 2 || second.LabUnits != 1 || second.TotalUnits != 3 {
		t.Errorf("String units should coerce to ints: %+v", second)
	}
}

func TestDecodeSubjectsFillsPlaceholders(t *testing.T) {
	payload := []byte(`{
		"subjects": [
			{"name": "Legible name, no code"},
			{"code": "", "name": ""},
			{"code": "CS 311"}
		]
	}`)

	subjects, err := DecodeSubjects(payload)
	if err != nil {
		t.Fatalf("DecodeSubjects failed: %v", err)
	}
	if len(subjects) != 3 {
		t.Fatalf("Expected 3 subjects, got %d", len(subjects))
	}

	if subjects[0].Code != "UNKNOWN_1" {
		t.Errorf("Expected placeholder UNKNOWN_1, got %q", subjects[0].Code)
	}
	if subjects[1].Code != "UNKNOWN_2" || subjects[1].Name != "Unknown" {
		t.Errorf("Expected placeholder code and name, got %+v", subjects[1])
	}
	if subjects[2].Name != "Unknown" {
		t.Errorf("Missing name should default to Unknown, got %q", subjects[2].Name)
	}
}

func TestDecodeSubjectsLooseUnitValues(t *testing.T) {
	payload := []byte(`{
		"subjects": [
			{"code": "CS 1", "name": "A", "lecture_units": "three", "lab_units": null, "total_units": true}
		]
	}`)

	subjects, err := DecodeSubjects(payload)
	if err != nil {
		t.Fatalf("DecodeSubjects failed: %v", err)
	}
	got := subjects[0]
	if got.LectureUnits != 0 || got.LabUnits != 0 || got.TotalUnits != 0 {
		t.Errorf("Uncoercible unit values should fall back to 0: %+v", got)
	}
}

func TestDecodeSubjectsRejectsNonJSON(t *testing.T) {
	if _, err := DecodeSubjects([]byte("not json")); err == nil {
		t.Error("Expected error for non-JSON payload")
	}
}

func TestDecodeSubjectsEmptyList(t *testing.T) {
	subjects, err := DecodeSubjects([]byte(`{"subjects": []}`))
	if err != nil {
		t.Fatalf("DecodeSubjects failed: %v", err)
	}
	if len(subjects) != 0 {
		t.Errorf("Expected no subjects, got %d", len(subjects))
	}
}

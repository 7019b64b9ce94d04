package providers

import (
	"strings"
	"testing"
)

func TestValidKind(t *testing.T) {
	for _, kind := range []DocumentKind{KindChecklist, KindRegistration, KindGrades, KindTimetable} {
		if !ValidKind(kind) {
			t.Errorf("Expected %q to be valid", kind)
		}
	}
	if ValidKind(DocumentKind("diploma")) {
		t.Error("Unknown kind should not be valid")
	}
	if ValidKind(DocumentKind("")) {
		t.Error("Empty kind should not be valid")
	}
}

func TestBuildPromptPerKind(t *testing.T) {
	tests := []struct {
		kind DocumentKind
		want string
	}{
		{kind: KindChecklist, want: "curriculum checklist"},
		{kind: KindRegistration, want: "Certificate of Registration"},
		{kind: KindGrades, want: "grade report"},
		{kind: KindTimetable, want: "class timetable"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			prompt := BuildPrompt(tt.kind)
			if !strings.Contains(prompt, tt.want) {
				t.Errorf("Prompt for %s should mention %q", tt.kind, tt.want)
			}
			// Every prompt spells out the exact field names the decoder expects.
			for _, field := range []string{"code", "name", "lecture_units", "lab_units", "total_units", "year_level", "term"} {
				if !strings.Contains(prompt, field) {
					t.Errorf("Prompt for %s missing field %q", tt.kind, field)
				}
			}
			if !strings.Contains(prompt, `"subjects"`) {
				t.Errorf("Prompt for %s should show the subjects envelope", tt.kind)
			}
		})
	}
}

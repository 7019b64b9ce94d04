package providers

import "fmt"

// DocumentKind identifies which kind of academic document an image shows.
// The prompt differs per kind because the tables are laid out differently.
type DocumentKind string

const (
	KindChecklist    DocumentKind = "checklist"
	KindRegistration DocumentKind = "registration"
	KindGrades       DocumentKind = "grades"
	KindTimetable    DocumentKind = "timetable"
)

// ValidKind reports whether the given kind is one the prompt builder knows.
func ValidKind(kind DocumentKind) bool {
	switch kind {
	case KindChecklist, KindRegistration, KindGrades, KindTimetable:
		return true
	}
	return false
}

// BuildPrompt generates the transcription prompt for the given document kind.
func BuildPrompt(kind DocumentKind) string {
	var source string
	var layoutNote string

	switch kind {
	case KindRegistration:
		source = "a student's Certificate of Registration"
		layoutNote = "The document lists the subjects the student enrolled in for one semester, one subject per row."
	case KindGrades:
		source = "a student's grade report"
		layoutNote = "The document lists graded subjects for one or more semesters. Ignore the grade columns; transcribe only the subject rows."
	case KindTimetable:
		source = "a student's class timetable"
		layoutNote = "The document is a weekly schedule grid. Collect every distinct subject that appears in the grid, once each."
	default:
		source = "a curriculum checklist"
		layoutNote = "The document lists the subjects of an academic program grouped by year level and semester. Transcribe every subject row in every visible group."
	}

	return fmt.Sprintf(`You are a meticulous university registrar's assistant transcribing %s from a photograph or screenshot.

INSTRUCTIONS:
1. %s
2. For every subject row, transcribe:
   - code: the subject code exactly as printed (e.g. "CS 121")
   - name: the descriptive subject title
   - lecture_units: lecture credit units as an integer
   - lab_units: laboratory credit units as an integer
   - total_units: total credit units as an integer
   - year_level: one of "1st Year", "2nd Year", "3rd Year", "4th Year"
   - term: one of "1st Semester", "2nd Semester", "Summer"
3. Transcribe exactly what is printed. Do not invent subjects, do not skip rows, do not merge rows.
4. If a value is unreadable or absent, use 0 for numbers and "" for text. Never guess.

OUTPUT FORMAT:
Respond with ONLY a JSON object in the following format:

{
  "subjects": [
    {"code": "...", "name": "...", "lecture_units": 0, "lab_units": 0, "total_units": 0, "year_level": "...", "term": "..."}
  ]
}

Do not wrap the JSON in markdown fences and do not add commentary before or after it.`, source, layoutNote)
}

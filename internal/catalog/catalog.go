package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YearLevel is the year placement of a subject within the program grid.
type YearLevel string

const (
	Year1 YearLevel = "1st Year"
	Year2 YearLevel = "2nd Year"
	Year3 YearLevel = "3rd Year"
	Year4 YearLevel = "4th Year"
)

// YearLevels returns all year levels in program order.
func YearLevels() []YearLevel {
	return []YearLevel{Year1, Year2, Year3, Year4}
}

// Term is the semester placement of a subject.
type Term string

const (
	Term1  Term = "1st Semester"
	Term2  Term = "2nd Semester"
	Summer Term = "Summer"
)

// Entry is one subject in the official curriculum.
type Entry struct {
	Code         string    `yaml:"code" json:"code"`
	Name         string    `yaml:"name" json:"name"`
	LectureUnits int       `yaml:"lecture_units" json:"lecture_units"`
	LabUnits     int       `yaml:"lab_units" json:"lab_units"`
	TotalUnits   int       `yaml:"total_units" json:"total_units"`
	YearLevel    YearLevel `yaml:"year_level" json:"year_level"`
	Term         Term      `yaml:"term" json:"term"`
}

// Catalog is the canonical curriculum for one program. It is built once at
// startup and read-only afterwards.
type Catalog struct {
	program string
	entries []Entry
	index   map[string]Entry
}

//go:embed curriculum.yaml
var curriculumYAML []byte

type curriculumFile struct {
	Program  string  `yaml:"program"`
	Subjects []Entry `yaml:"subjects"`
}

// Load parses a curriculum YAML document and indexes it by normalized code.
func Load(data []byte) (*Catalog, error) {
	var file curriculumFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse curriculum: %w", err)
	}
	if len(file.Subjects) == 0 {
		return nil, fmt.Errorf("curriculum %q contains no subjects", file.Program)
	}

	index := make(map[string]Entry, len(file.Subjects))
	for _, entry := range file.Subjects {
		key := NormalizeCode(entry.Code)
		if _, exists := index[key]; exists {
			return nil, fmt.Errorf("duplicate subject code %q in curriculum", entry.Code)
		}
		index[key] = entry
	}

	return &Catalog{
		program: file.Program,
		entries: file.Subjects,
		index:   index,
	}, nil
}

// Default loads the embedded curriculum. The embedded data is trusted, so a
// parse failure here is a programming error.
func Default() *Catalog {
	c, err := Load(curriculumYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded curriculum is invalid: %v", err))
	}
	return c
}

// Program returns the program name the catalog describes.
func (c *Catalog) Program() string {
	return c.program
}

// Lookup finds the canonical entry whose code normalizes to the same key as
// the given code.
func (c *Catalog) Lookup(code string) (Entry, bool) {
	entry, ok := c.index[NormalizeCode(code)]
	return entry, ok
}

// Size returns the number of subjects in the catalog.
func (c *Catalog) Size() int {
	return len(c.entries)
}

// Entries returns all catalog entries in curriculum order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Codes returns all canonical subject codes in curriculum order.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		codes = append(codes, entry.Code)
	}
	return codes
}

package extraction

import (
	"github.com/zense17/classyncserver/internal/catalog"
)

// AnchorRule names a subject used as a structural checkpoint for a section.
// The summer practicum is a single short row at the boundary between the two
// halves of the checklist and is the row most commonly cropped out of photos.
type AnchorRule struct {
	Code string
	Term catalog.Term
}

// SectionRule describes the expected shape of one logical section of the
// full document. These are configuration, not derived from the catalog.
type SectionRule struct {
	MinSubjects int
	MaxSubjects int
	Description string
	MinPerYear  map[catalog.YearLevel]int
	Anchor      *AnchorRule
}

// SummerAnchor is the practicum checkpoint shared by the second section rule
// and the overall classifier's two-image completeness check.
var SummerAnchor = AnchorRule{Code: "CS 195", Term: catalog.Summer}

// DefaultSectionRules returns the section expectations for the two-part
// curriculum checklist: the first photo covers Year 1 and Year 2, the second
// covers Year 3, Summer and Year 4.
func DefaultSectionRules() []SectionRule {
	anchor := SummerAnchor
	return []SectionRule{
		{
			MinSubjects: 27,
			MaxSubjects: 31,
			Description: "Year 1 and Year 2",
			MinPerYear: map[catalog.YearLevel]int{
				catalog.Year1: 12,
				catalog.Year2: 13,
			},
		},
		{
			MinSubjects: 23,
			MaxSubjects: 27,
			Description: "Year 3, Summer and Year 4",
			MinPerYear: map[catalog.YearLevel]int{
				catalog.Year3: 10,
				catalog.Year4: 8,
			},
			Anchor: &anchor,
		},
	}
}

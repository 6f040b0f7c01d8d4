package parsing

import (
	"regexp"
	"strings"

	"github.com/martin/portfolio-builder/internal/types"
)

var (
	// GPA anchored to the keyword ("GPA: 3.8", "GPA 3.8/4.0").
	gpaKeywordPattern = regexp.MustCompile(`(?i)\bgpa\b[:\s]*([0-4](?:\.\d{1,2})?)`)
	// Fallback: a bare decimal in the 0.0-4.0 range.
	gpaBarePattern = regexp.MustCompile(`\b[0-4]\.\d{1,2}\b`)
)

// ExtractEducation groups the education segment into entries and maps each
// group positionally: first line degree, second line institution, with the
// whole group scanned for a year and a GPA token. Unmatched remainder is
// discarded.
func ExtractEducation(seg Segment) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0)

	for _, group := range groupEntryLines(seg.Body()) {
		entry := types.EducationEntry{Degree: group[0]}
		if len(group) > 1 {
			entry.Institution = group[1]
		}

		text := strings.Join(group, "\n")
		entry.Year = findYear(text)
		entry.GPA = findGPA(text)

		entries = append(entries, entry)
	}
	return entries
}

func findGPA(text string) string {
	if m := gpaKeywordPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return gpaBarePattern.FindString(text)
}

package parsing

import (
	"strings"

	"github.com/martin/portfolio-builder/internal/types"
)

// companyDurationSeps are tried in order when splitting the second line of an
// experience entry into company and duration.
// Comma outranks the spaced dash: "Initech, 2022 - Present" must split at
// the comma, not inside the date range.
var companyDurationSeps = []string{"|", ",", " — ", " – ", " - ", " @ "}

// ExtractExperience groups the experience segment into entries: first line
// position, second line company/duration (split on a separator token, with
// the duration side identified by a date-span pattern), remaining lines
// concatenated into the description.
func ExtractExperience(seg Segment) []types.ExperienceEntry {
	entries := make([]types.ExperienceEntry, 0)

	for _, group := range groupEntryLines(seg.Body()) {
		entry := types.ExperienceEntry{Position: group[0]}

		if len(group) > 1 {
			entry.Company, entry.Duration = splitCompanyDuration(group[1])
		}
		if len(group) > 2 {
			entry.Description = strings.Join(group[2:], " ")
		}
		if entry.Duration == "" {
			entry.Duration = findDuration(strings.Join(group, "\n"))
		}

		entries = append(entries, entry)
	}
	return entries
}

// splitCompanyDuration splits a line like "Acme Corp | 2019 - 2022" at the
// first separator whose far side carries a date-span token. A separator with
// no date span on either side is part of the company name ("Acme, Inc" must
// not yield a duration of "Inc").
func splitCompanyDuration(line string) (company, duration string) {
	line = strings.TrimSpace(line)
	for _, sep := range companyDurationSeps {
		idx := strings.Index(line, sep)
		if idx < 0 {
			continue
		}
		left := strings.TrimSpace(line[:idx])
		right := strings.TrimSpace(line[idx+len(sep):])
		if left == "" || right == "" {
			continue
		}
		if findDuration(right) != "" {
			return left, right
		}
		if findDuration(left) != "" {
			return right, left
		}
	}
	return line, ""
}

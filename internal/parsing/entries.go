package parsing

import (
	"regexp"
	"strings"

	"github.com/martin/portfolio-builder/internal/decoding"
)

var (
	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	// A date span like "2019 - 2022", "2019 – Present" or a lone "Present".
	durationPattern = regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*(?:-|–|—|to)\s*(?:(19|20)\d{2}|present|current|now)\b|\b(?:present|current)\b`)
)

// groupEntryLines splits a section body into entry groups. A blank line ends
// the current group; a bullet line starts a new one. Bullet markers are
// stripped from the grouped text.
func groupEntryLines(lines []decoding.Line) [][]string {
	var groups [][]string
	var current []string

	flush := func() {
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
	}

	for _, line := range lines {
		if line.Blank {
			flush()
			continue
		}
		if line.Bullet {
			flush()
		}
		current = append(current, stripBullet(line.Text))
	}
	flush()
	return groups
}

// findYear returns the first 4-digit year token in the text, or "".
func findYear(text string) string {
	return yearPattern.FindString(text)
}

// findDuration returns the first date-span token in the text, or "".
func findDuration(text string) string {
	return strings.TrimSpace(durationPattern.FindString(text))
}

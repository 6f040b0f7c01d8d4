package parsing

import (
	"regexp"
	"strings"

	"github.com/martin/portfolio-builder/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)
	// Candidate phone runs; validated by digit count (7-15) before acceptance.
	phonePattern = regexp.MustCompile(`\+?\(?[0-9][0-9()\-\s.]{4,18}[0-9]`)
)

// ExtractContact pulls personal information out of the contact segment.
// Name is the first non-empty line that is not an email or phone line;
// address is whatever non-empty text remains unclassified. Missing fields
// stay empty, never inferred.
func ExtractContact(seg Segment) types.PersonalInfo {
	info := types.PersonalInfo{}

	text := seg.BodyText()
	info.Email = emailPattern.FindString(text)
	info.Phone = findPhone(text)

	var rest []string
	for _, line := range seg.Body() {
		if line.Blank {
			continue
		}
		trimmed := strings.TrimSpace(line.Text)
		if isContactDetailLine(trimmed) {
			continue
		}
		if info.Name == "" {
			info.Name = trimmed
			continue
		}
		rest = append(rest, trimmed)
	}
	info.Address = strings.Join(rest, ", ")

	return info
}

// findPhone returns the first candidate run with a plausible digit count.
func findPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		if n := countDigits(candidate); n >= 7 && n <= 15 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// isContactDetailLine reports whether a line is consumed by the email/phone
// matchers and should not become the name or address.
func isContactDetailLine(line string) bool {
	if emailPattern.MatchString(line) {
		return true
	}
	if m := phonePattern.FindString(line); m != "" {
		if n := countDigits(m); n >= 7 && n <= 15 {
			// Phone-only line: stripping the number leaves no letters behind.
			remainder := strings.Replace(line, m, "", 1)
			if !strings.ContainsFunc(remainder, func(r rune) bool {
				return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			}) {
				return true
			}
		}
	}
	return false
}

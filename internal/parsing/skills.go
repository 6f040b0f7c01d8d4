package parsing

import (
	"regexp"
	"strings"
)

// skillDelims splits a skills line into tokens: commas, semicolons, pipes,
// bullets, and colons (for inline "Languages: Go, Rust" prefixes).
var skillDelims = regexp.MustCompile(`[,;|:•·‣▪]`)

// ExtractSkills tokenizes a skills segment. Tokens are trimmed, empty and
// single-character tokens discarded, and duplicates dropped case-insensitively
// while keeping the casing of the first occurrence.
func ExtractSkills(seg Segment) []string {
	skills := make([]string, 0)
	seen := make(map[string]bool)

	for _, line := range seg.Body() {
		if line.Blank {
			continue
		}
		for _, token := range skillDelims.Split(stripBullet(line.Text), -1) {
			token = strings.TrimSpace(token)
			if len(token) <= 1 {
				continue
			}
			key := strings.ToLower(token)
			if seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, token)
		}
	}
	return skills
}

// ProbeKnownSkills scans the full document text for dictionary skills. This
// catches technologies mentioned outside a dedicated skills section. Matches
// are token-bounded so "Java" does not fire on "JavaScript".
func ProbeKnownSkills(text string, known []string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, skill := range known {
		if containsToken(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// containsToken reports whether needle occurs in haystack with non-word
// characters (or string edges) on both sides. A plain \b boundary would
// reject names like "C++" and "C#", so the check is done by hand.
func containsToken(haystack, needle string) bool {
	for from := 0; ; {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return false
		}
		i += from
		before := i == 0 || !isWordChar(haystack[i-1])
		afterIdx := i + len(needle)
		after := afterIdx >= len(haystack) || !isWordChar(haystack[afterIdx])
		if before && after {
			return true
		}
		from = i + 1
	}
}

func isWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// stripBullet removes a leading bullet marker from a line.
func stripBullet(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	for _, prefix := range []string{"- ", "* ", "• ", "· ", "‣ ", "▪ "} {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	return trimmed
}

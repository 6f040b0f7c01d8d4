package decoding

import (
	"regexp"
	"strings"
)

// Line is a single line of decoded text with the layout hints recoverable
// from plain-text extraction.
type Line struct {
	Text   string
	Blank  bool
	Bullet bool
	Upper  bool // all-caps line, a common heading cue
}

// DecodedText is the output of the format decoder: normalized plain text plus
// the ordered line records. Read-only once produced.
type DecodedText struct {
	Text  string
	Lines []Line
}

var multiSpace = regexp.MustCompile(`\s+`)
var excessBlanks = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes raw extracted text while preserving line structure:
// CRLF to LF, trailing whitespace trimmed, inner runs of whitespace collapsed,
// at most two consecutive blank lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = excessBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses internal whitespace runs,
// keeping bullet markers intact.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	content := multiSpace.ReplaceAllString(strings.TrimSpace(trimmed), " ")
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, prefix := range []string{"- ", "* ", "• ", "· ", "‣ ", "▪ "} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// isUpperLine reports whether a line consists of uppercase letters only
// (ignoring digits and punctuation). Requires at least one letter.
func isUpperLine(line string) bool {
	hasLetter := false
	for _, r := range line {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

// BuildDecodedText cleans raw extracted text and annotates each line with
// layout hints for the segmenter.
func BuildDecodedText(raw string) *DecodedText {
	text := CleanText(raw)
	split := strings.Split(text, "\n")
	lines := make([]Line, 0, len(split))
	for _, l := range split {
		lines = append(lines, Line{
			Text:   l,
			Blank:  strings.TrimSpace(l) == "",
			Bullet: isBulletLine(l),
			Upper:  isUpperLine(l),
		})
	}
	return &DecodedText{Text: text, Lines: lines}
}

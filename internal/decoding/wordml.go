package decoding

import (
	"html"
	"regexp"
	"strings"
)

// wordMLTokens matches, in document order, the pieces of WordprocessingML that
// carry visible text or structure: <w:t> runs, paragraph ends, explicit
// breaks, and tabs. Everything else in document.xml is formatting.
var wordMLTokens = regexp.MustCompile(`(?s)<w:t(?: [^>]*)?>(.*?)</w:t>|</w:p\s*>|<w:(?:br|cr)(?: [^>]*)?/?>|<w:tab(?: [^>]*)?/?>`)

// wordMLToText flattens a document.xml body into plain text. Text runs are
// concatenated in reading order; paragraph ends and explicit breaks become
// newlines, tabs become a single space (column layout is not recoverable).
func wordMLToText(content string) string {
	var b strings.Builder
	for _, m := range wordMLTokens.FindAllStringSubmatchIndex(content, -1) {
		// Submatch 1 is the <w:t> body; -1 start means another alternative hit.
		if m[2] >= 0 {
			b.WriteString(html.UnescapeString(content[m[2]:m[3]]))
			continue
		}
		token := content[m[0]:m[1]]
		if strings.HasPrefix(token, "<w:tab") {
			b.WriteString(" ")
		} else {
			b.WriteString("\n")
		}
	}
	return b.String()
}

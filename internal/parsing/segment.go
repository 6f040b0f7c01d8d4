package parsing

import (
	"strings"

	"github.com/martin/portfolio-builder/internal/decoding"
)

// Segment is a contiguous, labeled span of the decoded text. When HasHeading
// is set, the first line is the heading that opened the section.
type Segment struct {
	Label      Label
	Lines      []decoding.Line
	HasHeading bool
}

// Body returns the segment lines without the heading line.
func (s *Segment) Body() []decoding.Line {
	if s.HasHeading && len(s.Lines) > 0 {
		return s.Lines[1:]
	}
	return s.Lines
}

// BodyText returns the segment body joined back into a text block.
func (s *Segment) BodyText() string {
	lines := s.Body()
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.Text)
	}
	return strings.Join(parts, "\n")
}

// Segmentation is total and order-preserving: every input line lands in
// exactly one segment, and concatenating the segments reproduces the input.

const (
	maxHeadingWords = 4
	maxHeadingLen   = 48
)

// SegmentText splits decoded text into labeled segments by scanning for
// heading lines. Lines before the first recognized heading belong to the
// contact segment (the header block carries personal information); lines
// after a heading join the open segment. Never fails; worst case the whole
// document is a single segment.
func SegmentText(dt *decoding.DecodedText, vocab *Vocabulary) []Segment {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}

	var segments []Segment
	var current *Segment

	open := func(label Label, hasHeading bool) {
		if current != nil {
			segments = append(segments, *current)
		}
		current = &Segment{Label: label, HasHeading: hasHeading}
	}

	for _, line := range dt.Lines {
		if label := headingLabel(line, vocab); label != "" {
			open(label, true)
			current.Lines = append(current.Lines, line)
			continue
		}
		if current == nil {
			// Header block before any recognized heading.
			open(LabelContact, false)
		}
		current.Lines = append(current.Lines, line)
	}
	if current != nil {
		segments = append(segments, *current)
	}
	return segments
}

// headingLabel reports which section a line opens, or "" if the line is not a
// heading. A heading must look like one (short, few words, not a bullet) and
// match a vocabulary keyword; an all-caps line is heading-shaped even when it
// exceeds the word limit. Ties resolve in the fixed priority order
// contact > education > experience > skills.
func headingLabel(line decoding.Line, vocab *Vocabulary) Label {
	if line.Blank || line.Bullet {
		return ""
	}
	text := strings.TrimSuffix(strings.TrimSpace(line.Text), ":")
	if text == "" || len(text) > maxHeadingLen {
		return ""
	}
	if !line.Upper && len(strings.Fields(text)) > maxHeadingWords {
		return ""
	}

	lower := strings.ToLower(text)
	for _, label := range headingPriority {
		for _, keyword := range vocab.Sections[label] {
			if strings.Contains(lower, keyword) {
				return label
			}
		}
	}
	return ""
}

// Package pipeline provides the high-level orchestration of the extraction
// process: decode, segment, extract, normalize. Each run is a one-way
// sequence of pure transforms over a single document; runs share nothing but
// read-only configuration.
package pipeline

import (
	"context"
	"log"

	"github.com/martin/portfolio-builder/internal/decoding"
	"github.com/martin/portfolio-builder/internal/parsing"
	"github.com/martin/portfolio-builder/internal/types"
)

// Options holds the read-only configuration shared by pipeline runs.
type Options struct {
	Vocabulary *parsing.Vocabulary
	Verbose    bool
}

// Run executes the full extraction pipeline on one document. Decode failures
// abort the run; extraction itself is best-effort and always yields a
// structurally complete profile. The context is checked between stages so an
// abandoned request stops before doing further work.
func Run(ctx context.Context, doc decoding.RawDocument, opts Options) (*types.ExtractedProfile, error) {
	vocab := opts.Vocabulary
	if vocab == nil {
		vocab = parsing.DefaultVocabulary()
	}

	decoded, err := decoding.Decode(doc)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		log.Printf("[pipeline] decoded %s: %d lines", doc.Filename, len(decoded.Lines))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	segments := parsing.SegmentText(decoded, vocab)
	if opts.Verbose {
		for _, seg := range segments {
			log.Printf("[pipeline] segment %s: %d lines", seg.Label, len(seg.Lines))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var frags parsing.Fragments
	for _, seg := range segments {
		switch seg.Label {
		case parsing.LabelContact:
			frags.Contacts = append(frags.Contacts, parsing.ExtractContact(seg))
		case parsing.LabelSkills:
			frags.Skills = append(frags.Skills, parsing.ExtractSkills(seg)...)
		case parsing.LabelEducation:
			frags.Education = append(frags.Education, parsing.ExtractEducation(seg)...)
		case parsing.LabelExperience:
			frags.Experience = append(frags.Experience, parsing.ExtractExperience(seg)...)
		}
	}

	// Dictionary probe over the whole text catches technologies mentioned
	// outside a dedicated skills section.
	frags.Skills = append(frags.Skills, parsing.ProbeKnownSkills(decoded.Text, vocab.KnownSkills)...)

	return parsing.Normalize(frags), nil
}

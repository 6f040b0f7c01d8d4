// Package parsing segments decoded resume text into labeled sections and
// extracts typed fields from each. Extraction is best-effort by design:
// resume formatting is unconstrained free text, so missing signal yields
// empty fields, never errors.
package parsing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Label identifies a resume section
type Label string

const (
	LabelContact    Label = "contact"
	LabelSkills     Label = "skills"
	LabelEducation  Label = "education"
	LabelExperience Label = "experience"
	LabelOther      Label = "other"
)

// headingPriority is the authoritative tie-break order when a heading line
// matches more than one section vocabulary.
var headingPriority = []Label{LabelContact, LabelEducation, LabelExperience, LabelSkills}

// Vocabulary holds the heading keywords per section plus the known-skills
// dictionary probed against the full document text.
type Vocabulary struct {
	Sections    map[Label][]string `yaml:"sections"`
	KnownSkills []string           `yaml:"known_skills"`
}

// DefaultVocabulary returns the compiled-in heading vocabulary used when no
// vocabulary file is configured.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Sections: map[Label][]string{
			LabelContact:    {"contact", "personal information", "about me"},
			LabelEducation:  {"education", "academic", "qualifications"},
			LabelExperience: {"experience", "employment", "work history", "career"},
			LabelSkills:     {"skills", "technologies", "technical", "competencies", "tools"},
		},
		KnownSkills: []string{
			"Java", "Python", "JavaScript", "TypeScript", "Go", "Rust", "C++", "C#",
			"React", "Angular", "Vue.js", "Node.js", "HTML", "CSS",
			"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis",
			"Git", "Docker", "Kubernetes", "Terraform", "AWS", "Azure", "GCP",
			"REST API", "GraphQL", "gRPC", "Microservices", "Linux",
		},
	}
}

// LoadVocabulary reads a vocabulary YAML file. Sections missing from the file
// fall back to the compiled-in defaults so a partial override stays usable.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary YAML: %w", err)
	}

	defaults := DefaultVocabulary()
	if v.Sections == nil {
		v.Sections = defaults.Sections
	} else {
		for label, words := range defaults.Sections {
			if len(v.Sections[label]) == 0 {
				v.Sections[label] = words
			}
		}
	}
	if len(v.KnownSkills) == 0 {
		v.KnownSkills = defaults.KnownSkills
	}
	return &v, nil
}

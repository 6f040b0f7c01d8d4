// Package types defines the canonical profile record shared across the pipeline.
package types

// PersonalInfo holds the contact block of a resume. Fields that could not be
// extracted are empty strings, never omitted.
type PersonalInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// EducationEntry represents a single education record
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa"`
}

// ExperienceEntry represents a single work experience record
type ExperienceEntry struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ExtractedProfile is the canonical output of the extraction pipeline and the
// sole contract handed to the site generator. It is always structurally
// complete: the slices are non-nil and PersonalInfo is always present, so
// consumers never branch on field presence.
type ExtractedProfile struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Skills       []string          `json:"skills"`
	Education    []EducationEntry  `json:"education"`
	Experience   []ExperienceEntry `json:"experience"`
}

// NewExtractedProfile returns an empty but structurally complete profile.
func NewExtractedProfile() *ExtractedProfile {
	return &ExtractedProfile{
		Skills:     []string{},
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
	}
}

// Complete returns a copy with nil slices replaced by empty ones. Profiles
// arriving over the wire may carry nulls; downstream code relies on non-nil.
func (p *ExtractedProfile) Complete() *ExtractedProfile {
	out := *p
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.Education == nil {
		out.Education = []EducationEntry{}
	}
	if out.Experience == nil {
		out.Experience = []ExperienceEntry{}
	}
	return &out
}

// IsEmpty reports whether nothing at all was extracted.
func (p *ExtractedProfile) IsEmpty() bool {
	return p.PersonalInfo == (PersonalInfo{}) &&
		len(p.Skills) == 0 && len(p.Education) == 0 && len(p.Experience) == 0
}

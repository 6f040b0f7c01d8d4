package parsing

import (
	"strings"

	"github.com/martin/portfolio-builder/internal/types"
)

// Fragments collects the per-segment extractor outputs before normalization.
// A resume may yield several contact-like fragments (e.g. header block plus a
// later "Contact" section); all are kept and coalesced here.
type Fragments struct {
	Contacts   []types.PersonalInfo
	Skills     []string
	Education  []types.EducationEntry
	Experience []types.ExperienceEntry
}

// Normalize merges extractor fragments into one canonical profile. First
// non-empty value wins per contact field, skills are deduplicated
// case-insensitively with the original casing of the first occurrence kept,
// and entry order is preserved as extracted. The result is always
// structurally complete, however sparse the input.
func Normalize(frags Fragments) *types.ExtractedProfile {
	profile := types.NewExtractedProfile()

	for _, c := range frags.Contacts {
		if profile.PersonalInfo.Name == "" {
			profile.PersonalInfo.Name = c.Name
		}
		if profile.PersonalInfo.Email == "" {
			profile.PersonalInfo.Email = c.Email
		}
		if profile.PersonalInfo.Phone == "" {
			profile.PersonalInfo.Phone = c.Phone
		}
		if profile.PersonalInfo.Address == "" {
			profile.PersonalInfo.Address = c.Address
		}
	}

	profile.Skills = DedupSkills(frags.Skills)
	profile.Education = append(profile.Education, frags.Education...)
	profile.Experience = append(profile.Experience, frags.Experience...)

	return profile
}

// DedupSkills removes case-insensitive duplicates while preserving insertion
// order and the casing of each skill's first occurrence.
func DedupSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))

	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, skill)
	}
	return out
}

package parsing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVocabulary(t *testing.T) {
	v := DefaultVocabulary()

	for _, label := range []Label{LabelContact, LabelSkills, LabelEducation, LabelExperience} {
		assert.NotEmpty(t, v.Sections[label], "section %s must have keywords", label)
	}
	assert.NotEmpty(t, v.KnownSkills)
}

func TestLoadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	content := `
sections:
  skills:
    - stack
    - toolbox
known_skills:
  - Fortran
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := LoadVocabulary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"stack", "toolbox"}, v.Sections[LabelSkills])
	assert.Equal(t, []string{"Fortran"}, v.KnownSkills)
	// Sections missing from the file keep the defaults.
	assert.Equal(t, DefaultVocabulary().Sections[LabelEducation], v.Sections[LabelEducation])
}

func TestLoadVocabularyErrors(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections: ["), 0o644))
	_, err = LoadVocabulary(path)
	assert.Error(t, err)
}

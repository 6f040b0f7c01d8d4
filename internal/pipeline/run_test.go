package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martin/portfolio-builder/internal/decoding"
)

// buildResumeDocx packs the given lines into a minimal OOXML document, one
// paragraph per line.
func buildResumeDocx(t *testing.T, lines ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	for _, line := range lines {
		if line == "" {
			body.WriteString("<w:p></w:p>")
			continue
		}
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", line)
	}

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
			`<w:body>` + body.String() + `</w:body></w:document>`,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestRunFullResume(t *testing.T) {
	data := buildResumeDocx(t,
		"John Smith",
		"john@x.com",
		"555-123-4567",
		"",
		"Skills",
		"Python, Go, Rust",
		"",
		"Experience",
		"Backend Engineer",
		"Acme Corp | 2019 - 2022",
		"Built the billing pipeline.",
		"",
		"Education",
		"B.S. Computer Science",
		"State University",
		"2018, GPA: 3.8",
	)

	profile, err := Run(context.Background(), decoding.RawDocument{
		Data:     data,
		Format:   decoding.FormatDOCX,
		Filename: "resume.docx",
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "John Smith", profile.PersonalInfo.Name)
	assert.Equal(t, "john@x.com", profile.PersonalInfo.Email)
	assert.Equal(t, "555-123-4567", profile.PersonalInfo.Phone)

	assert.Contains(t, profile.Skills, "Python")
	assert.Contains(t, profile.Skills, "Go")
	assert.Contains(t, profile.Skills, "Rust")

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "B.S. Computer Science", profile.Education[0].Degree)
	assert.Equal(t, "State University", profile.Education[0].Institution)
	assert.Equal(t, "2018", profile.Education[0].Year)
	assert.Equal(t, "3.8", profile.Education[0].GPA)

	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Backend Engineer", profile.Experience[0].Position)
	assert.Equal(t, "Acme Corp", profile.Experience[0].Company)
	assert.Equal(t, "2019 - 2022", profile.Experience[0].Duration)
}

func TestRunHeaderOnlyResume(t *testing.T) {
	// Scenario: a contact header with no other section headings yields
	// personal info and empty skills/education/experience.
	data := buildResumeDocx(t, "John Smith", "john@x.com", "555-123-4567")

	profile, err := Run(context.Background(), decoding.RawDocument{
		Data:     data,
		Format:   decoding.FormatDOCX,
		Filename: "resume.docx",
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "John Smith", profile.PersonalInfo.Name)
	assert.Equal(t, "john@x.com", profile.PersonalInfo.Email)
	assert.Equal(t, "555-123-4567", profile.PersonalInfo.Phone)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Experience)
}

func TestRunSkillsDedupAcrossSections(t *testing.T) {
	// "python" reappearing outside the skills section must not duplicate
	// the entry, and the first casing wins.
	data := buildResumeDocx(t,
		"Jane Doe",
		"",
		"Skills",
		"Python, Go, Rust",
		"",
		"Experience",
		"Engineer",
		"Acme | 2019 - 2022",
		"Wrote python services.",
	)

	profile, err := Run(context.Background(), decoding.RawDocument{
		Data:   data,
		Format: decoding.FormatDOCX,
	}, Options{})
	require.NoError(t, err)

	count := 0
	for _, s := range profile.Skills {
		if s == "Python" {
			count++
		}
		assert.NotEqual(t, "python", s, "first-seen casing must win")
	}
	assert.Equal(t, 1, count)
}

func TestRunDecodeFailureAborts(t *testing.T) {
	_, err := Run(context.Background(), decoding.RawDocument{
		Data:   []byte("not a document"),
		Format: decoding.FormatPDF,
	}, Options{})

	var corrupt *decoding.CorruptDocumentError
	assert.ErrorAs(t, err, &corrupt)
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := buildResumeDocx(t, "John Smith")
	_, err := Run(ctx, decoding.RawDocument{Data: data, Format: decoding.FormatDOCX}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

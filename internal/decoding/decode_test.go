package decoding

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMinimalDocx assembles a just-valid OOXML package with the given
// paragraphs in word/document.xml.
func buildMinimalDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
			`</Relationships>`,
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

// buildMinimalPDF assembles a one-page PDF with the given text, computing the
// xref offsets at build time.
func buildMinimalPDF(t *testing.T, text string) []byte {
	t.Helper()

	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		buf.WriteString(obj)
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefStart)

	return buf.Bytes()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		wantErr  bool
	}{
		{"pdf", "pdf", FormatPDF, false},
		{"docx", "docx", FormatDOCX, false},
		{"doc", "doc", FormatDOC, false},
		{"Uppercase", "PDF", FormatPDF, false},
		{"With dot", ".docx", FormatDOCX, false},
		{"Plain text rejected", "txt", "", true},
		{"Empty rejected", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				var unsupported *UnsupportedFormatError
				require.ErrorAs(t, err, &unsupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatFromFilename(t *testing.T) {
	got, err := FormatFromFilename("resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, got)

	_, err = FormatFromFilename("resume.txt")
	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)

	_, err = FormatFromFilename("resume")
	assert.ErrorAs(t, err, &unsupported)
}

func TestDecodeDocx(t *testing.T) {
	data := buildMinimalDocx(t, "John Smith", "john@example.com", "Software Engineer")

	dt, err := Decode(RawDocument{Data: data, Format: FormatDOCX, Filename: "resume.docx"})
	require.NoError(t, err)

	assert.Contains(t, dt.Text, "John Smith")
	assert.Contains(t, dt.Text, "john@example.com")
	require.GreaterOrEqual(t, len(dt.Lines), 3)
	assert.Equal(t, "John Smith", dt.Lines[0].Text)
}

func TestDecodePDF(t *testing.T) {
	data := buildMinimalPDF(t, "Hello Resume")

	dt, err := Decode(RawDocument{Data: data, Format: FormatPDF, Filename: "resume.pdf"})
	require.NoError(t, err)
	assert.Contains(t, dt.Text, "Hello Resume")
}

func TestDecodeCorrupt(t *testing.T) {
	garbage := []byte("this is not a document at all")
	truncated := buildMinimalPDF(t, "Hello")[:40]

	tests := []struct {
		name   string
		data   []byte
		format Format
	}{
		{"Garbage as pdf", garbage, FormatPDF},
		{"Truncated pdf", truncated, FormatPDF},
		{"Garbage as docx", garbage, FormatDOCX},
		{"Legacy doc binary", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, FormatDOC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(RawDocument{Data: tt.data, Format: tt.format, Filename: "x"})
			var corrupt *CorruptDocumentError
			require.ErrorAs(t, err, &corrupt, "malformed input must surface as corrupt, never crash")
			assert.Equal(t, tt.format, corrupt.Format)
		})
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	data := buildMinimalDocx(t) // zero paragraphs

	_, err := Decode(RawDocument{Data: data, Format: FormatDOCX, Filename: "empty.docx"})
	var empty *EmptyDocumentError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "empty.docx", empty.Filename)
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := Decode(RawDocument{Data: []byte("hi"), Format: Format("txt")})
	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

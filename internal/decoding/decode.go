package decoding

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format identifies a supported document format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOC  Format = "doc"
	FormatDOCX Format = "docx"
)

// ParseFormat maps a declared format string (with or without a leading dot)
// to a supported Format. Anything else is an UnsupportedFormatError.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "pdf":
		return FormatPDF, nil
	case "doc":
		return FormatDOC, nil
	case "docx":
		return FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Format: s}
	}
}

// FormatFromFilename derives the declared format from a filename extension.
func FormatFromFilename(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return "", &UnsupportedFormatError{Format: name}
	}
	return ParseFormat(ext)
}

// RawDocument is an uploaded document awaiting decoding. It is transient:
// the storage layer drops the bytes once a parse run completes.
type RawDocument struct {
	Data     []byte
	Format   Format
	Filename string
}

// Decode converts a raw document into cleaned plain text with line hints.
// Reading order of text runs is preserved; images and tables are ignored.
func Decode(doc RawDocument) (*DecodedText, error) {
	var raw string
	var err error

	switch doc.Format {
	case FormatPDF:
		raw, err = extractPDFText(doc.Data)
	case FormatDOCX, FormatDOC:
		// Legacy .doc is routed through the OOXML reader as well: misnamed
		// OOXML files parse fine, true CFB binaries fail as corrupt.
		raw, err = extractDocxText(doc.Data)
	default:
		return nil, &UnsupportedFormatError{Format: string(doc.Format)}
	}
	if err != nil {
		return nil, &CorruptDocumentError{Format: doc.Format, Cause: err}
	}

	dt := BuildDecodedText(raw)
	if strings.TrimSpace(dt.Text) == "" {
		return nil, &EmptyDocumentError{Filename: doc.Filename}
	}
	return dt, nil
}

// extractPDFText pulls the plain text of every page, in page order. The pdf
// library panics on some malformed streams, so the recover turns those into
// parse errors instead of crashing the request.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip unreadable pages, keep the rest
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// extractDocxText opens an OOXML document and strips the WordprocessingML
// markup down to paragraph-separated plain text.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return wordMLToText(doc.Editable().GetContent()), nil
}

// Package decoding converts raw resume documents (PDF, DOC, DOCX) into plain
// text with coarse layout hints.
package decoding

import "fmt"

// UnsupportedFormatError indicates the declared format is not one of pdf/doc/docx
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q (expected pdf, doc or docx)", e.Format)
}

// CorruptDocumentError indicates the bytes do not parse as the declared format
type CorruptDocumentError struct {
	Format Format
	Cause  error
}

func (e *CorruptDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupt %s document: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("corrupt %s document", e.Format)
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Cause
}

// EmptyDocumentError indicates the document decoded to zero extractable characters
type EmptyDocumentError struct {
	Filename string
}

func (e *EmptyDocumentError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("document %s contains no extractable text", e.Filename)
	}
	return "document contains no extractable text"
}

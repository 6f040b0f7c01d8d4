// Package rendering binds a canonical profile into the site template and
// writes the generated static assets.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing the site template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// GenerationError represents an I/O failure while writing the generated site
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("site generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("site generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

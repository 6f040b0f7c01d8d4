// Package server provides the HTTP REST API for the portfolio builder.
package server

import (
	"errors"
	"net/http"

	"github.com/martin/portfolio-builder/internal/decoding"
	"github.com/martin/portfolio-builder/internal/rendering"
	"github.com/martin/portfolio-builder/internal/storage"
)

// Client-visible error kinds. Every pipeline failure surfaces one of these
// plus a human-readable message; the caller decides whether to resubmit.
const (
	KindUnsupportedFormat = "UnsupportedFormat"
	KindCorruptDocument   = "CorruptDocument"
	KindEmptyDocument     = "EmptyDocument"
	KindNotFound          = "NotFound"
	KindConflict          = "Conflict"
	KindGenerationFailed  = "GenerationFailed"
	KindBadRequest        = "BadRequest"
	KindInternal          = "Internal"
)

// ErrorKind maps an error to its client-visible kind.
func ErrorKind(err error) string {
	var (
		unsupported *decoding.UnsupportedFormatError
		corrupt     *decoding.CorruptDocumentError
		empty       *decoding.EmptyDocumentError
		notFound    *storage.NotFoundError
		conflict    *storage.ConflictError
		genFailed   *rendering.GenerationError
		tmplFailed  *rendering.TemplateError
	)
	switch {
	case errors.As(err, &unsupported):
		return KindUnsupportedFormat
	case errors.As(err, &corrupt):
		return KindCorruptDocument
	case errors.As(err, &empty):
		return KindEmptyDocument
	case errors.As(err, &notFound):
		return KindNotFound
	case errors.As(err, &conflict):
		return KindConflict
	case errors.As(err, &genFailed), errors.As(err, &tmplFailed):
		return KindGenerationFailed
	default:
		return KindInternal
	}
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch ErrorKind(err) {
	case KindUnsupportedFormat:
		return http.StatusBadRequest
	case KindCorruptDocument, KindEmptyDocument:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindGenerationFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

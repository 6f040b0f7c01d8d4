package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/martin/portfolio-builder/internal/decoding"
	"github.com/martin/portfolio-builder/internal/pipeline"
	"github.com/martin/portfolio-builder/internal/rendering"
	"github.com/martin/portfolio-builder/internal/types"
)

// UploadResponse acknowledges a stored document. FileID is the opaque handle
// Parse should use; FileName is echoed for clients that correlate by name.
type UploadResponse struct {
	Message  string `json:"message"`
	FileName string `json:"fileName"`
	FileID   string `json:"fileId"`
}

// ParseRequest identifies a previously uploaded document. Either the handle
// or the original filename must be present.
type ParseRequest struct {
	FileID   string `json:"fileId" validate:"required_without=FileName,omitempty,uuid4"`
	FileName string `json:"fileName" validate:"required_without=FileID"`
}

// GenerateResponse reports a generated site. The timestamp is the only part
// of the result that differs between identical generations.
type GenerateResponse struct {
	WebsiteURL  string    `json:"websiteUrl"`
	Message     string    `json:"message"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// acceptedContentTypes are the declared multipart content types admitted at
// the upload boundary. Browsers commonly send octet-stream for documents, so
// the filename extension remains the authoritative format signal.
var acceptedContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/octet-stream":                                                true,
	"":                                                                        true,
}

// handleUpload accepts a multipart resume upload, validates its declared
// format before any pipeline work, and stores it for a later parse call.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, KindBadRequest, "Invalid multipart payload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, KindBadRequest, "Missing 'file' form field")
		return
	}
	defer func() { _ = file.Close() }()

	format, err := decoding.FormatFromFilename(header.Filename)
	if err != nil {
		s.pipelineError(w, err)
		return
	}
	if ct := header.Header.Get("Content-Type"); !acceptedContentTypes[strings.ToLower(ct)] {
		s.pipelineError(w, &decoding.UnsupportedFormatError{Format: ct})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxUpload+1))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, KindInternal, "Failed to read upload: "+err.Error())
		return
	}
	if int64(len(data)) > s.maxUpload {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, KindBadRequest,
			fmt.Sprintf("Upload exceeds limit of %d bytes", s.maxUpload))
		return
	}

	doc := s.store.Put(header.Filename, format, data)
	log.Printf("[upload] stored %s (%s, %d bytes) as %s", doc.Filename, doc.Format, len(data), doc.ID)

	s.jsonResponse(w, http.StatusOK, UploadResponse{
		Message:  "File uploaded successfully",
		FileName: doc.Filename,
		FileID:   doc.ID,
	})
}

// parseRequestMessage distinguishes a malformed handle from a missing
// identifier so the client knows whether to fix or supply one.
func parseRequestMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "FileID" && fe.Tag() == "uuid4" {
				return "Invalid fileId: not a server-issued handle"
			}
		}
	}
	return "Either fileId or fileName is required"
}

// handleParse claims the stored document and runs the extraction pipeline.
// The slot is released whether the run succeeds or fails; the raw document
// is transient by design.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, KindBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, KindBadRequest, parseRequestMessage(err))
		return
	}

	doc, err := s.store.Claim(req.FileID, req.FileName)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	profile, err := pipeline.Run(r.Context(), decoding.RawDocument{
		Data:     doc.Data,
		Format:   doc.Format,
		Filename: doc.Filename,
	}, pipeline.Options{Vocabulary: s.vocab})
	if err != nil {
		s.store.Release(doc.ID, ErrorKind(err))
		log.Printf("[parse] %s failed: %v", doc.ID, err)
		s.pipelineError(w, err)
		return
	}
	s.store.Release(doc.ID, "")

	log.Printf("[parse] %s: %d skills, %d education, %d experience",
		doc.ID, len(profile.Skills), len(profile.Education), len(profile.Experience))
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleGenerate renders a profile payload into a static site. The call is
// stateless: the payload need not come from the parse that just ran.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var profile types.ExtractedProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, KindBadRequest, "Invalid profile payload: "+err.Error())
		return
	}

	site, err := rendering.Generate(&profile, s.renderCfg)
	if err != nil {
		log.Printf("[generate] failed: %v", err)
		s.pipelineError(w, err)
		return
	}

	log.Printf("[generate] wrote site %s", site.Path)
	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		WebsiteURL:  site.URL,
		Message:     "Website generated successfully",
		GeneratedAt: site.GeneratedAt,
	})
}

package rendering

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/martin/portfolio-builder/internal/types"
)

// Config holds the read-only generator configuration.
type Config struct {
	TemplatePath string // path to the portfolio HTML template
	StylesPath   string // path to the stylesheet copied into each site
	OutputDir    string // root directory for generated sites
	BaseURL      string // public base URL the server serves sites under
}

// GeneratedSite describes one generation result. Regenerating the same
// profile overwrites the same site; only GeneratedAt differs between calls.
type GeneratedSite struct {
	URL         string    `json:"websiteUrl"`
	Path        string    `json:"-"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// templateData is the structure handed to the site template.
type templateData struct {
	Title   string
	Profile *types.ExtractedProfile
}

// Generate renders a profile into a self-contained static site. The site
// directory is derived from a hash of the profile content, so generating the
// same profile twice produces the same locator and byte-identical assets.
// Fails only on template or I/O errors; a structurally complete profile
// always binds.
func Generate(profile *types.ExtractedProfile, cfg Config) (*GeneratedSite, error) {
	profile = profile.Complete()

	id, err := siteID(profile)
	if err != nil {
		return nil, &GenerationError{Message: "failed to fingerprint profile", Cause: err}
	}

	page, err := renderPage(profile, cfg.TemplatePath)
	if err != nil {
		return nil, err
	}

	styles, err := os.ReadFile(cfg.StylesPath)
	if err != nil {
		return nil, &GenerationError{Message: "failed to read stylesheet", Cause: err}
	}

	dir := filepath.Join(cfg.OutputDir, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &GenerationError{Message: "failed to create site directory", Cause: err}
	}

	var g errgroup.Group
	g.Go(func() error {
		return os.WriteFile(filepath.Join(dir, "index.html"), page, 0o644)
	})
	g.Go(func() error {
		return os.WriteFile(filepath.Join(dir, "styles.css"), styles, 0o644)
	})
	if err := g.Wait(); err != nil {
		return nil, &GenerationError{Message: "failed to write site assets", Cause: err}
	}

	return &GeneratedSite{
		URL:         fmt.Sprintf("%s/sites/%s/", strings.TrimRight(cfg.BaseURL, "/"), id),
		Path:        dir,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// siteID fingerprints the profile content. Equal profiles map to the same
// site directory, which is what makes regeneration idempotent.
func siteID(profile *types.ExtractedProfile) (string, error) {
	canonical, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])[:12], nil
}

// renderPage executes the site template against the profile.
func renderPage(profile *types.ExtractedProfile, templatePath string) ([]byte, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New("portfolio").Parse(string(content))
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}

	data := templateData{
		Title:   pageTitle(profile),
		Profile: profile,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return buf.Bytes(), nil
}

func pageTitle(profile *types.ExtractedProfile) string {
	if profile.PersonalInfo.Name != "" {
		return profile.PersonalInfo.Name
	}
	return "Portfolio"
}

// Package assets ships the default document templates and resolves
// overrides from the filesystem. An empty base path means the embedded
// set; a non-empty one loads templates from that directory, falling back
// to the embedded file when an override is absent.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed templates/resume.html templates/career-history.html
var embedded embed.FS

// Template file names, identical in the embedded set, in override
// directories, and on a served site.
const (
	ResumeTemplateName = "resume.html"
	CareerTemplateName = "career-history.html"
)

// ErrUnknownTemplate is returned for names outside the template set.
var ErrUnknownTemplate = errors.New("unknown template")

var templateNames = map[string]bool{
	ResumeTemplateName: true,
	CareerTemplateName: true,
}

// Resolver loads templates with optional filesystem overrides.
type Resolver struct {
	basePath string
}

// NewResolver creates a resolver. An empty basePath serves only the
// embedded templates.
func NewResolver(basePath string) *Resolver {
	return &Resolver{basePath: basePath}
}

// Load returns the named template, preferring an override file under the
// base path when one exists.
func (r *Resolver) Load(name string) (string, error) {
	if !templateNames[name] {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	if r.basePath != "" {
		path := filepath.Join(r.basePath, name)
		data, err := os.ReadFile(path) // #nosec G304 -- base path is user-provided
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("reading template override: %w", err)
		}
	}
	data, err := embedded.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("reading embedded template: %w", err)
	}
	return string(data), nil
}

// ResumeTemplate returns the embedded 履歴書 template.
func ResumeTemplate() string {
	return mustEmbedded(ResumeTemplateName)
}

// CareerTemplate returns the embedded 職務経歴書 template.
func CareerTemplate() string {
	return mustEmbedded(CareerTemplateName)
}

func mustEmbedded(name string) string {
	data, err := embedded.ReadFile("templates/" + name)
	if err != nil {
		// The files are compiled into the binary; a failure here is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return string(data)
}

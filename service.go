package rirekisho

import (
	"context"

	"github.com/hikarutsuji/rirekisho/internal/mdrender"
)

// Service is the high-level entry point: load the content set once and
// build both documents from it.
type Service struct {
	loader   *Loader
	renderer *mdrender.Renderer
}

// New creates a Service over the given content source.
func New(fetcher Fetcher, opts ...LoaderOption) *Service {
	return &Service{
		loader:   NewLoader(fetcher, opts...),
		renderer: mdrender.New(),
	}
}

// Load fetches and validates the complete content set without building.
func (s *Service) Load(ctx context.Context) (*LoadResult, error) {
	return s.loader.Load(ctx)
}

// Generate loads the content set and builds both documents.
func (s *Service) Generate(ctx context.Context, form FormState) (*Documents, error) {
	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.Build(result, form)
}

// Build renders both documents from an already-loaded content set. Useful
// for regenerating with different form input without refetching.
func (s *Service) Build(result *LoadResult, form FormState) (*Documents, error) {
	resume, err := BuildResumeHTML(result.Templates.Resume, result.Data, form)
	if err != nil {
		return nil, err
	}
	career, err := BuildCareerHTML(result.Templates.Career, result.Data, form)
	if err != nil {
		return nil, err
	}
	return &Documents{Resume: resume, Career: career}, nil
}

// DetailHTML fetches a project detail Markdown document and renders it to
// an HTML fragment.
func (s *Service) DetailHTML(ctx context.Context, path string) (string, error) {
	md, err := s.loader.LoadDetailMarkdown(ctx, path)
	if err != nil {
		return "", err
	}
	html, err := s.renderer.ToHTML(ctx, md)
	if err != nil {
		return "", loadErr(ErrUnknown, path, err)
	}
	return html, nil
}

package rirekisho

import (
	"context"
	"errors"
	"fmt"
	gopath "path"
	"strings"
	"sync"

	"github.com/hikarutsuji/rirekisho/internal/schema"
	"github.com/hikarutsuji/rirekisho/internal/yamlutil"
)

// Site paths of the content sources and templates.
const (
	pathIntro            = "/data/intro.yml"
	pathHistory          = "/data/history.yml"
	pathCertifications   = "/data/certifications.yml"
	pathHeader           = "/data/header.yml"
	pathSelfPR           = "/data/selfPR.md"
	pathProjectsIndex    = "/data/projects/index.yml"
	pathExperiencesIndex = "/data/experiences/index.yml"
	pathResumeTemplate   = "/templates/resume.html"
	pathCareerTemplate   = "/templates/career-history.html"
)

// Loader fetches and validates the complete content set.
type Loader struct {
	fetcher   Fetcher
	origin    string
	templates *Templates
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithOrigin sets the portfolio URL printed in the documents. When the
// fetcher is an HTTPFetcher its origin is used by default.
func WithOrigin(origin string) LoaderOption {
	return func(l *Loader) { l.origin = strings.TrimRight(origin, "/") }
}

// WithTemplates supplies the two templates directly instead of fetching
// them from the content source.
func WithTemplates(templates Templates) LoaderOption {
	return func(l *Loader) { l.templates = &templates }
}

// NewLoader creates a Loader over the given content source.
func NewLoader(fetcher Fetcher, opts ...LoaderOption) *Loader {
	l := &Loader{fetcher: fetcher}
	if hf, ok := fetcher.(*HTTPFetcher); ok {
		l.origin = hf.Origin()
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadResumeData fetches every content source and both templates,
// validates them, and returns the aggregate. It is shorthand for
// NewLoader(fetcher, opts...).Load(ctx).
func LoadResumeData(ctx context.Context, fetcher Fetcher, opts ...LoaderOption) (*LoadResult, error) {
	return NewLoader(fetcher, opts...).Load(ctx)
}

// fetchSlot is one resource of the initial concurrent batch. kind is the
// failure category applied when the resource responds with an error
// status; transport-level failures are always ErrNetwork.
type fetchSlot struct {
	path string
	kind error
	text string
	err  error
}

// Load runs the full pipeline: one concurrent batch for the seven data
// sources and two templates, then a second fan-out for any file refs the
// projects and experiences indices declare, then validation into the
// ResumeData aggregate. Resolved ref entries keep their index order.
func (l *Loader) Load(ctx context.Context) (*LoadResult, error) {
	slots := []*fetchSlot{
		{path: pathIntro, kind: ErrDataLoad},
		{path: pathHistory, kind: ErrDataLoad},
		{path: pathCertifications, kind: ErrDataLoad},
		{path: pathHeader, kind: ErrDataLoad},
		{path: pathSelfPR, kind: ErrDataLoad},
		{path: pathProjectsIndex, kind: ErrDataLoad},
		{path: pathExperiencesIndex, kind: ErrDataLoad},
	}
	if l.templates == nil {
		slots = append(slots,
			&fetchSlot{path: pathResumeTemplate, kind: ErrTemplateLoad},
			&fetchSlot{path: pathCareerTemplate, kind: ErrTemplateLoad},
		)
	}
	l.fetchAll(ctx, slots)
	for _, s := range slots {
		if s.err != nil {
			return nil, classifyFetch(s.err, s.path, s.kind)
		}
	}

	templates := Templates{}
	if l.templates != nil {
		templates = *l.templates
	} else {
		templates = Templates{Resume: slots[7].text, Career: slots[8].text}
	}

	data := ResumeData{
		SelfPR:       slots[4].text,
		PortfolioURL: l.origin,
	}

	introDoc, err := decodeYAML(slots[0].text, pathIntro)
	if err != nil {
		return nil, err
	}
	if data.Intro, err = schema.ParseIntro(introDoc, sourceOf(pathIntro)); err != nil {
		return nil, classifySchema(err, pathIntro)
	}

	historyDoc, err := decodeYAML(slots[1].text, pathHistory)
	if err != nil {
		return nil, err
	}
	if data.History, err = schema.ParseHistory(historyDoc, sourceOf(pathHistory)); err != nil {
		return nil, classifySchema(err, pathHistory)
	}

	certsDoc, err := decodeYAML(slots[2].text, pathCertifications)
	if err != nil {
		return nil, err
	}
	if data.Certifications, err = schema.ParseCertifications(certsDoc, sourceOf(pathCertifications)); err != nil {
		return nil, classifySchema(err, pathCertifications)
	}

	headerDoc, err := decodeYAML(slots[3].text, pathHeader)
	if err != nil {
		return nil, err
	}
	if data.Header, err = schema.ParseHeader(headerDoc, sourceOf(pathHeader)); err != nil {
		return nil, classifySchema(err, pathHeader)
	}
	data.GitHubURL = data.Header.LinkByKey("github")

	projectsDoc, err := decodeYAML(slots[5].text, pathProjectsIndex)
	if err != nil {
		return nil, err
	}
	projectsRoot, err := schema.ParseProjectsRoot(projectsDoc, sourceOf(pathProjectsIndex))
	if err != nil {
		return nil, classifySchema(err, pathProjectsIndex)
	}
	if data.Projects, err = l.resolveProjects(ctx, projectsRoot); err != nil {
		return nil, err
	}

	experiencesDoc, err := decodeYAML(slots[6].text, pathExperiencesIndex)
	if err != nil {
		return nil, err
	}
	experiencesRoot, err := schema.ParseExperiencesRoot(experiencesDoc, sourceOf(pathExperiencesIndex))
	if err != nil {
		return nil, classifySchema(err, pathExperiencesIndex)
	}
	if data.Experiences, err = l.resolveExperiences(ctx, experiencesRoot); err != nil {
		return nil, err
	}

	if data.Abstract, err = l.loadAbstract(ctx, data.Experiences); err != nil {
		return nil, err
	}

	return &LoadResult{Data: data, Templates: templates}, nil
}

// LoadDetailMarkdown fetches one lazily-loaded project detail document.
// The path must satisfy the same guard as index refs, with a Markdown
// extension.
func (l *Loader) LoadDetailMarkdown(ctx context.Context, path string) (string, error) {
	file, err := schema.ValidateRefPath(path, schema.MarkdownExtensions,
		schema.Context{Source: "detail"}, "detail_markdown_path")
	if err != nil {
		return "", classifySchema(err, path)
	}
	text, err := l.fetcher.FetchText(ctx, file)
	if err != nil {
		return "", classifyFetch(err, file, ErrDataLoad)
	}
	return text, nil
}

func (l *Loader) fetchAll(ctx context.Context, slots []*fetchSlot) {
	var wg sync.WaitGroup
	for _, s := range slots {
		wg.Add(1)
		go func(s *fetchSlot) {
			defer wg.Done()
			s.text, s.err = l.fetcher.FetchText(ctx, s.path)
		}(s)
	}
	wg.Wait()
}

func (l *Loader) resolveProjects(ctx context.Context, root schema.ProjectsRoot) ([]ProjectEntry, error) {
	if root.Kind == schema.KindInline {
		return root.Projects, nil
	}
	slots := refSlots(root.Refs)
	l.fetchAll(ctx, slots)

	projects := make([]ProjectEntry, 0, len(slots))
	for _, s := range slots {
		if s.err != nil {
			return nil, classifyFetch(s.err, s.path, ErrDataLoad)
		}
		doc, err := decodeYAML(s.text, s.path)
		if err != nil {
			return nil, err
		}
		project, err := schema.ParseProjectEntry(doc, sourceOf(s.path))
		if err != nil {
			return nil, classifySchema(err, s.path)
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (l *Loader) resolveExperiences(ctx context.Context, root schema.ExperiencesRoot) ([]ExperienceCompany, error) {
	if root.Kind == schema.KindInline {
		return root.Companies, nil
	}
	slots := refSlots(root.Refs)
	l.fetchAll(ctx, slots)

	companies := make([]ExperienceCompany, 0, len(slots))
	for _, s := range slots {
		if s.err != nil {
			return nil, classifyFetch(s.err, s.path, ErrDataLoad)
		}
		doc, err := decodeYAML(s.text, s.path)
		if err != nil {
			return nil, err
		}
		company, err := schema.ParseExperienceCompany(doc, sourceOf(s.path))
		if err != nil {
			return nil, classifySchema(err, s.path)
		}
		companies = append(companies, company)
	}
	return companies, nil
}

// loadAbstract fetches the company abstract of the first experience
// entry that declares one. A declared but malformed path is a schema
// violation, not a silent skip.
func (l *Loader) loadAbstract(ctx context.Context, companies []ExperienceCompany) (string, error) {
	for _, company := range companies {
		if company.AbstractMDFilePath == "" {
			continue
		}
		file, err := schema.ValidateRefPath(company.AbstractMDFilePath, schema.MarkdownExtensions,
			schema.Context{Source: sourceOf(pathExperiencesIndex).Source},
			fmt.Sprintf("company %q abstract_mdFilePath", company.ID))
		if err != nil {
			return "", classifySchema(err, pathExperiencesIndex)
		}
		text, err := l.fetcher.FetchText(ctx, file)
		if err != nil {
			return "", classifyFetch(err, file, ErrDataLoad)
		}
		return text, nil
	}
	return "", nil
}

func refSlots(refs []schema.FileRef) []*fetchSlot {
	slots := make([]*fetchSlot, len(refs))
	for i, ref := range refs {
		slots[i] = &fetchSlot{path: ref.File, kind: ErrDataLoad}
	}
	return slots
}

func sourceOf(path string) schema.Context {
	return schema.Context{Source: gopath.Base(path)}
}

func decodeYAML(text, resource string) (any, error) {
	doc, err := yamlutil.DecodeString(text)
	if err != nil {
		return nil, loadErr(ErrDataLoad, resource, err)
	}
	return doc, nil
}

func classifyFetch(err error, resource string, kind error) error {
	var fe *FetchError
	if errors.As(err, &fe) {
		if fe.StatusCode == 0 {
			return loadErr(ErrNetwork, resource, err)
		}
		return loadErr(kind, resource, err)
	}
	return loadErr(ErrUnknown, resource, err)
}

func classifySchema(err error, resource string) error {
	var se *schema.Error
	if errors.As(err, &se) {
		return loadErr(ErrSchema, resource, err)
	}
	return loadErr(ErrUnknown, resource, err)
}

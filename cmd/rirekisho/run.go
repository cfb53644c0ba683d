package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hikarutsuji/rirekisho"
	"github.com/hikarutsuji/rirekisho/internal/assets"
	"github.com/hikarutsuji/rirekisho/internal/config"
	"github.com/hikarutsuji/rirekisho/internal/fileutil"
	"github.com/hikarutsuji/rirekisho/internal/hints"
)

// Output file names. Hiring workflows expect the Japanese names.
const (
	resumeFileName = "履歴書.html"
	careerFileName = "職務経歴書.html"
)

func run(f *generateFlags, stdout io.Writer) error {
	cfg := config.DefaultConfig()
	if f.config != "" {
		loaded, err := config.LoadConfig(f.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nil))
			}
			return err
		}
		cfg = loaded
	}
	mergeFlags(cfg, f)

	form, err := buildForm(cfg)
	if err != nil {
		return err
	}

	fetcher, opts, err := buildSource(cfg, f)
	if err != nil {
		return err
	}
	svc := rirekisho.New(fetcher, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	if f.verbose {
		fmt.Fprintln(os.Stderr, "Loading content set...")
	}
	docs, err := svc.Generate(ctx, form)
	if err != nil {
		return decorateError(err, cfg.Source.Origin)
	}

	outDir := cfg.Output.Dir
	if outDir == "" {
		outDir = "."
	}
	resumePath := filepath.Join(outDir, resumeFileName)
	careerPath := filepath.Join(outDir, careerFileName)

	if err := fileutil.WriteDocument(resumePath, docs.Resume); err != nil {
		return err
	}
	if err := fileutil.WriteDocument(careerPath, docs.Career); err != nil {
		return err
	}

	if !f.quiet {
		fmt.Fprintln(stdout, resumePath)
		fmt.Fprintln(stdout, careerPath)
	}
	return nil
}

// mergeFlags overlays explicitly set flag values onto the config.
func mergeFlags(cfg *config.Config, f *generateFlags) {
	if f.origin != "" {
		cfg.Source.Origin = f.origin
	}
	if f.dir != "" {
		cfg.Source.Dir = f.dir
	}
	if f.output != "" {
		cfg.Output.Dir = f.output
	}
	if f.photo != "" {
		cfg.Photo.Path = f.photo
	}
	if f.postalCode != "" {
		cfg.Form.PostalCode = f.postalCode
	}
	if f.address != "" {
		cfg.Form.Address = f.address
	}
	if f.phone != "" {
		cfg.Form.Phone = f.phone
	}
	if f.motivation != "" {
		cfg.Form.Motivation = f.motivation
	}
	if f.preference != "" {
		cfg.Form.Preference = f.preference
	}
}

func buildForm(cfg *config.Config) (rirekisho.FormState, error) {
	form := rirekisho.FormState{
		PostalCode: cfg.Form.PostalCode,
		Address:    cfg.Form.Address,
		Phone:      cfg.Form.Phone,
		Motivation: cfg.Form.Motivation,
		Preference: cfg.Form.Preference,
	}
	if cfg.Photo.Path == "" {
		return form, nil
	}

	data, err := os.ReadFile(cfg.Photo.Path) // #nosec G304 -- photo path is user-provided
	if err != nil {
		return form, fmt.Errorf("reading photo: %w", err)
	}
	dataURL, err := rirekisho.EncodePhoto(data)
	if err != nil {
		return form, fmt.Errorf("%w%s", err, hints.ForPhoto())
	}
	form.PhotoDataURL = dataURL
	return form, nil
}

func buildSource(cfg *config.Config, f *generateFlags) (rirekisho.Fetcher, []rirekisho.LoaderOption, error) {
	var fetcher rirekisho.Fetcher
	switch {
	case cfg.Source.Origin != "" && cfg.Source.Dir != "":
		return nil, nil, fmt.Errorf("--origin and --dir are mutually exclusive")
	case cfg.Source.Origin != "":
		fetcher = rirekisho.NewHTTPFetcher(cfg.Source.Origin, nil)
	case cfg.Source.Dir != "":
		fetcher = rirekisho.NewDirFetcher(cfg.Source.Dir)
	default:
		return nil, nil, fmt.Errorf("no content source: pass --origin or --dir%s", hints.ForNetwork(""))
	}

	var opts []rirekisho.LoaderOption
	if cfg.Source.Dir != "" && cfg.Source.Origin == "" {
		// Local generation still wants a portfolio link when one is known.
		opts = append(opts, rirekisho.WithOrigin(f.origin))
	}
	if f.builtinTemplates || f.templateDir != "" {
		resolver := assets.NewResolver(f.templateDir)
		resume, err := resolver.Load(assets.ResumeTemplateName)
		if err != nil {
			return nil, nil, err
		}
		career, err := resolver.Load(assets.CareerTemplateName)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, rirekisho.WithTemplates(rirekisho.Templates{
			Resume: resume,
			Career: career,
		}))
	}
	return fetcher, opts, nil
}

// decorateError appends an actionable hint to known failure categories.
func decorateError(err error, origin string) error {
	switch {
	case errors.Is(err, rirekisho.ErrNetwork):
		return fmt.Errorf("%w%s", err, hints.ForNetwork(origin))
	case errors.Is(err, rirekisho.ErrTemplateLoad):
		return fmt.Errorf("%w%s", err, hints.ForTemplates())
	case errors.Is(err, rirekisho.ErrSchema):
		return fmt.Errorf("%w%s", err, hints.ForSchema())
	default:
		return err
	}
}

// Package rirekisho generates printable Japanese résumé documents (履歴書
// and 職務経歴書) from the structured YAML/Markdown content of a personal
// portfolio site.
//
// # Quick Start
//
// Create a service over a content origin, load, and generate:
//
//	svc := rirekisho.New(
//	    rirekisho.NewHTTPFetcher("https://example.com", nil),
//	    rirekisho.WithOrigin("https://example.com"),
//	)
//
//	docs, err := svc.Generate(ctx, rirekisho.FormState{
//	    Address:    "東京都千代田区1-1",
//	    Motivation: "...",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("履歴書.html", []byte(docs.Resume), 0o644)
//	os.WriteFile("職務経歴書.html", []byte(docs.Career), 0o644)
//
// # Pipeline
//
// The generation process follows these stages:
//
//  1. Concurrent fetch of the YAML/Markdown sources and both HTML
//     templates from the content origin
//  2. Schema validation into the ResumeData aggregate, resolving the
//     projects and experiences indices (inline records or per-file refs)
//  3. Deterministic DOM population of the two templates, producing
//     standalone printable HTML documents
//
// Printing itself is delegated to the browser; no PDF is generated here.
//
// # Error Classification
//
// Load failures carry one of five categories (ErrNetwork, ErrDataLoad,
// ErrTemplateLoad, ErrSchema, ErrUnknown) testable with errors.Is, plus
// the resource being processed and the underlying cause.
package rirekisho

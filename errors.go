package rirekisho

import (
	"errors"
	"fmt"
)

// Load failure categories. Every error returned by LoadResumeData and
// Service.Generate matches exactly one of these with errors.Is.
var (
	// ErrNetwork indicates the content origin could not be reached at
	// all (DNS failure, refused connection, timeout).
	ErrNetwork = errors.New("network failure")

	// ErrDataLoad indicates a data resource (YAML or Markdown) was
	// reachable but returned a non-success status or unreadable body.
	ErrDataLoad = errors.New("data load failure")

	// ErrTemplateLoad indicates an HTML template resource failed the
	// same way.
	ErrTemplateLoad = errors.New("template load failure")

	// ErrSchema indicates fetched content did not satisfy the expected
	// document shape.
	ErrSchema = errors.New("schema violation")

	// ErrUnknown covers failures that fit none of the other categories.
	ErrUnknown = errors.New("unknown failure")
)

// LoadError is the concrete error type produced by the loading pipeline.
// Kind is one of the category sentinels above, Resource names the path
// or URL being processed when the failure occurred.
type LoadError struct {
	Kind     error
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Resource, e.Err)
}

// Unwrap exposes both the category sentinel and the underlying cause,
// so errors.Is works against either.
func (e *LoadError) Unwrap() []error { return []error{e.Kind, e.Err} }

func loadErr(kind error, resource string, err error) *LoadError {
	return &LoadError{Kind: kind, Resource: resource, Err: err}
}

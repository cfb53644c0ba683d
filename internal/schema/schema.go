// Package schema validates parsed YAML content into strictly-typed records.
//
// Each content domain (intro, history, certifications, projects,
// experiences, header) has one validator that fully walks the untyped value
// and reconstructs it, rejecting anything not conforming. Errors carry a
// path-qualified message such as
// "[header.yml] intro.base_info[0].birth must be a string" so a content
// author can locate the offending field without reading code.
package schema

import (
	"fmt"
	"strings"
	"time"

	"github.com/hikarutsuji/rirekisho/internal/textutil"
)

// Context labels the source being validated, typically the fetched file
// path. It is embedded into every error message.
type Context struct {
	Source string
}

// Error is a structural validation failure at a specific path inside a
// source document.
type Error struct {
	Source string
	Path   string
	Reason string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("[%s] %s %s", e.Source, e.Path, e.Reason)
}

func errf(ctx Context, path, format string, args ...any) *Error {
	return &Error{Source: ctx.Source, Path: path, Reason: fmt.Sprintf(format, args...)}
}

// record narrows an untyped value to a YAML mapping.
func record(value any) (map[string]any, bool) {
	m, ok := value.(map[string]any)
	return m, ok
}

// optionalString accepts a string or nil; nil normalizes to "".
func optionalString(value any, ctx Context, path string) (string, error) {
	if value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", errf(ctx, path, "must be a string")
	}
	return s, nil
}

// requiredString accepts only a non-empty string; identifiers use this.
func requiredString(value any, ctx Context, path string) (string, error) {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", errf(ctx, path, "is required and must be a non-empty string")
	}
	return s, nil
}

// optionalDateString accepts a string or a YAML date scalar and normalizes
// the latter to ISO YYYY-MM-DD.
func optionalDateString(value any, ctx Context, path string) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case time.Time:
		return v.Format("2006-01-02"), nil
	case string:
		return v, nil
	default:
		return "", errf(ctx, path, "must be a string")
	}
}

// optionalScalarString accepts strings, numbers and date scalars, rendering
// all as text. Free-form time fields on the timeline use this.
func optionalScalarString(value any, ctx Context, path string) (string, error) {
	switch value.(type) {
	case nil:
		return "", nil
	case string, int, int64, uint64, float64, time.Time:
		return textutil.NormalizeScalar(value), nil
	default:
		return "", errf(ctx, path, "must be a string/number/date")
	}
}

// optionalStringArray accepts a sequence of strings or nil; nil normalizes
// to an empty list, never an error.
func optionalStringArray(value any, ctx Context, path string) ([]string, error) {
	if value == nil {
		return []string{}, nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil, errf(ctx, path, "must be string[]")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errf(ctx, path, "must be string[]")
		}
		out = append(out, s)
	}
	return out, nil
}

package schema

import (
	"fmt"
	"strings"
)

// FileRef points at a separate resource to be fetched and validated
// individually. Both the projects index and the experiences index may list
// refs instead of inline records.
type FileRef struct {
	File string
}

// RootKind distinguishes the two valid index shapes.
type RootKind int

const (
	// KindInline means the index embeds full entity records. An empty
	// list is always inline.
	KindInline RootKind = iota
	// KindRefs means every element is a {file} pointer.
	KindRefs
)

// Recognized data-file extensions for ref targets.
var yamlExtensions = []string{".yml", ".yaml"}

// MarkdownExtensions are accepted for lazily-loaded detail documents.
var MarkdownExtensions = []string{".md"}

// ValidateRefPath guards a referenced path against traversal and malformed
// URLs: it must be site-root-relative (leading "/"), end in one of the
// given extensions, and contain no "..", "//" or backslash sequences.
// The leading "/" is the static web root, not a filesystem absolute path.
func ValidateRefPath(value string, extensions []string, ctx Context, path string) (string, error) {
	file := strings.TrimSpace(value)
	if file == "" {
		return "", errf(ctx, path, "must be a non-empty string")
	}
	if !strings.HasPrefix(file, "/") {
		return "", errf(ctx, path, `must start with "/" (site-root-relative path)`)
	}
	matched := false
	for _, ext := range extensions {
		if strings.HasSuffix(file, ext) {
			matched = true
			break
		}
	}
	if !matched {
		return "", errf(ctx, path, "must end with %s", strings.Join(extensions, " or "))
	}
	if strings.Contains(file, "..") {
		return "", errf(ctx, path, `must not contain ".."`)
	}
	if strings.Contains(file, "//") {
		return "", errf(ctx, path, `must not contain "//"`)
	}
	if strings.Contains(file, `\`) {
		return "", errf(ctx, path, `must not contain "\"`)
	}
	return file, nil
}

// splitIndexShapes classifies the elements of an index list into inline
// records and file refs. A mixed list is ambiguous and fails with an error
// naming the first element whose shape disagrees with the first element's.
func splitIndexShapes(items []any, ctx Context, listPath string) (RootKind, error) {
	if len(items) == 0 {
		return KindInline, nil
	}
	isRef := func(item any) bool {
		m, ok := record(item)
		if !ok {
			return false
		}
		_, ok = m["file"].(string)
		return ok
	}
	first := isRef(items[0])
	for i, item := range items[1:] {
		if isRef(item) != first {
			return 0, errf(ctx, fmt.Sprintf("%s[%d]", listPath, i+1),
				"mixes inline entries and file refs; the list must be all one or all the other")
		}
	}
	if first {
		return KindRefs, nil
	}
	return KindInline, nil
}

// parseRefs validates every element of a refs-shaped index list.
func parseRefs(items []any, ctx Context, listPath string) ([]FileRef, error) {
	refs := make([]FileRef, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s[%d].file", listPath, i)
		m, ok := record(item)
		if !ok {
			return nil, errf(ctx, path, "must be a string")
		}
		raw, ok := m["file"].(string)
		if !ok {
			return nil, errf(ctx, path, "must be a string")
		}
		file, err := ValidateRefPath(raw, yamlExtensions, ctx, path)
		if err != nil {
			return nil, err
		}
		refs = append(refs, FileRef{File: file})
	}
	return refs, nil
}

// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForNetwork returns hints for an unreachable content origin.
func ForNetwork(origin string) string {
	hints := []string{"check that the site is reachable"}
	if origin == "" {
		hints = append(hints, "set --origin to the deployed site URL")
	} else if !strings.HasPrefix(origin, "http") {
		hints = append(hints, "pass --dir for a local content checkout")
	}
	return formatHints(hints)
}

// ForSchema returns a hint for content validation failures. The error
// message already names the file and field path.
func ForSchema() string {
	return format("fix the named field in the content file and regenerate")
}

// ForTemplates returns hints for missing template resources.
func ForTemplates() string {
	return formatHints([]string{
		"the site must serve /templates/resume.html and /templates/career-history.html",
		"or pass --builtin-templates to use the embedded set",
	})
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hints := []string{"use --config /path/to/file.yaml"}
	if len(searchedPaths) > 0 {
		hints = append(hints, "searched: "+strings.Join(searchedPaths, ", "))
	}
	return formatHints(hints)
}

// ForPhoto returns a hint for rejected ID photo files.
func ForPhoto() string {
	return format("use a JPEG or PNG file of at most 8MB")
}

func format(hint string) string {
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	var b strings.Builder
	for _, hint := range hints {
		b.WriteString(format(hint))
	}
	return b.String()
}

package hints

import (
	"strings"
	"testing"
)

func TestForNetwork_EmptyOrigin(t *testing.T) {
	t.Parallel()

	got := ForNetwork("")
	if !strings.Contains(got, "--origin") {
		t.Errorf("ForNetwork(\"\") = %q, want --origin suggestion", got)
	}
}

func TestForNetwork_LocalPath(t *testing.T) {
	t.Parallel()

	got := ForNetwork("./site")
	if !strings.Contains(got, "--dir") {
		t.Errorf("ForNetwork(local) = %q, want --dir suggestion", got)
	}
}

func TestForConfigNotFound_IncludesSearchedPaths(t *testing.T) {
	t.Parallel()

	got := ForConfigNotFound([]string{"a.yaml", "b.yml"})
	if !strings.Contains(got, "a.yaml, b.yml") {
		t.Errorf("ForConfigNotFound = %q, want searched paths", got)
	}
}

func TestHintFormat(t *testing.T) {
	t.Parallel()

	for _, hint := range []string{ForSchema(), ForPhoto(), ForTemplates()} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("hint %q does not follow the hint format", hint)
		}
	}
}

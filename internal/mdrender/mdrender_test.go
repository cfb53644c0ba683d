package mdrender

import (
	"context"
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	t.Parallel()

	r := New()

	t.Run("renders headings and lists", func(t *testing.T) {
		t.Parallel()

		out, err := r.ToHTML(context.Background(), "# 概要\n\n- 項目1\n- 項目2\n")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(out, "<h1") || !strings.Contains(out, "<li>項目1</li>") {
			t.Errorf("ToHTML() = %q, want heading and list items", out)
		}
	})

	t.Run("renders GFM table", func(t *testing.T) {
		t.Parallel()

		out, err := r.ToHTML(context.Background(), "| a | b |\n|---|---|\n| 1 | 2 |\n")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if !strings.Contains(out, "<table>") {
			t.Errorf("ToHTML() = %q, want table markup", out)
		}
	})

	t.Run("escapes raw html", func(t *testing.T) {
		t.Parallel()

		out, err := r.ToHTML(context.Background(), "text <script>alert(1)</script>")
		if err != nil {
			t.Fatalf("ToHTML() error = %v", err)
		}
		if strings.Contains(out, "<script>alert") {
			t.Errorf("ToHTML() = %q, raw html must not pass through", out)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := r.ToHTML(ctx, "# x"); err == nil {
			t.Error("ToHTML(cancelled) error = nil, want context error")
		}
	})
}

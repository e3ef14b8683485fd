package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kanata-dev/pagegen/internal/model"
)

// testStructure returns a fully populated structure for writer tests.
func testStructure() *model.Structure {
	return &model.Structure{
		RootPath:   "/srv/my-blog",
		IndexPath:  "/srv/my-blog/index.html",
		AssetsPath: "/srv/my-blog/assets",
		Categories: []string{"tech", "life"},
	}
}

// TestSimpleWriter tests the plain-text report.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("includes project name and structure fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		n, err := w.WriteStructure(testStructure())
		if err != nil {
			t.Fatalf("failed to write report: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected byte count %d, got %d", buf.Len(), n)
		}

		out := buf.String()
		for _, want := range []string{"Project: My Blog", "/srv/my-blog", "tech, life"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got %q", want, out)
			}
		}
		if strings.Contains(out, "no index.html") {
			t.Errorf("unexpected missing-index note for project with index: %q", out)
		}
	})

	t.Run("notes a missing index", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		s := testStructure()
		s.IndexPath = ""
		if _, err := w.WriteStructure(s); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}
		if !strings.Contains(buf.String(), "no index.html found") {
			t.Errorf("expected missing-index note, got %q", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown report.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders table and category list", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.WriteStructure(testStructure()); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		out := buf.String()
		for _, want := range []string{"# Site Structure Report", "| Project", "My Blog", "## Categories", "- tech", "- life"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got %q", want, out)
			}
		}
	})

	t.Run("marks missing paths as not found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		s := testStructure()
		s.IndexPath = ""
		s.AssetsPath = ""
		s.Categories = nil
		if _, err := w.WriteStructure(s); err != nil {
			t.Fatalf("failed to write report: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "not found") {
			t.Errorf("expected 'not found' markers, got %q", out)
		}
		if strings.Contains(out, "## Categories") {
			t.Errorf("expected no category section for empty list, got %q", out)
		}
	})
}

// TestMultiWriter tests fan-out to multiple writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	mw := NewMultiWriter(NewSimpleWriter(&a), NewSimpleWriter(&b))

	if _, err := mw.WriteStructure(testStructure()); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}
	if a.String() != b.String() {
		t.Error("expected identical output in both writers")
	}
	if a.Len() == 0 {
		t.Error("expected non-empty output")
	}
}

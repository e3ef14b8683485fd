package model

import (
	"strings"
	"testing"
)

// TestStructureAccessors verifies the presence helpers and name
// derivation on Structure.
func TestStructureAccessors(t *testing.T) {
	t.Parallel()

	t.Run("HasIndex and HasAssets reflect optional paths", func(t *testing.T) {
		t.Parallel()

		s := &Structure{RootPath: "/srv/blog"}
		if s.HasIndex() {
			t.Error("expected HasIndex to be false for empty IndexPath")
		}
		if s.HasAssets() {
			t.Error("expected HasAssets to be false for empty AssetsPath")
		}

		s = &Structure{
			RootPath:   "/srv/blog",
			IndexPath:  "/srv/blog/index.html",
			AssetsPath: "/srv/blog/assets",
		}
		if !s.HasIndex() {
			t.Error("expected HasIndex to be true")
		}
		if !s.HasAssets() {
			t.Error("expected HasAssets to be true")
		}
	})

	t.Run("ProjectName is the root base name", func(t *testing.T) {
		t.Parallel()

		s := &Structure{RootPath: "/home/user/sites/my-blog"}
		if got := s.ProjectName(); got != "my-blog" {
			t.Errorf("expected project name 'my-blog', got %q", got)
		}
	})

	t.Run("DisplayName title-cases separators", func(t *testing.T) {
		t.Parallel()

		s := &Structure{RootPath: "/home/user/sites/my-first_site"}
		if got := s.DisplayName(); got != "My First Site" {
			t.Errorf("expected display name 'My First Site', got %q", got)
		}
	})
}

// TestStructureString verifies the human-readable rendering, including
// the "not found" markers for missing optional paths.
func TestStructureString(t *testing.T) {
	t.Parallel()

	t.Run("missing index and assets reported as not found", func(t *testing.T) {
		t.Parallel()

		s := &Structure{
			RootPath:   "/srv/blog",
			Categories: []string{"tech", "life"},
		}
		out := s.String()

		if !strings.Contains(out, "Root: /srv/blog") {
			t.Errorf("expected root path in output, got %q", out)
		}
		if !strings.Contains(out, "Index: not found") {
			t.Errorf("expected missing index marker, got %q", out)
		}
		if !strings.Contains(out, "Assets: not found") {
			t.Errorf("expected missing assets marker, got %q", out)
		}
		if !strings.Contains(out, "Categories: [tech, life]") {
			t.Errorf("expected category list, got %q", out)
		}
	})

	t.Run("present paths rendered verbatim", func(t *testing.T) {
		t.Parallel()

		s := &Structure{
			RootPath:   "/srv/blog",
			IndexPath:  "/srv/blog/index.html",
			AssetsPath: "/srv/blog/assets",
		}
		out := s.String()

		if !strings.Contains(out, "Index: /srv/blog/index.html") {
			t.Errorf("expected index path in output, got %q", out)
		}
		if !strings.Contains(out, "Assets: /srv/blog/assets") {
			t.Errorf("expected assets path in output, got %q", out)
		}
	})
}

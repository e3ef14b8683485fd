package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testTemplate = `<!DOCTYPE html>
<html>
<head><title>{{title}}</title></head>
<body>
<h1>{{title}}</h1>
<main>{{content}}</main>
</body>
</html>
`

// scaffoldProject creates a minimal project directory with a template.
func scaffoldProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "default.html"), []byte(testTemplate), 0600); err != nil {
		t.Fatal(err)
	}
	return root
}

// TestNewGenerateCmd tests the generate command creation.
func TestNewGenerateCmd(t *testing.T) {
	t.Parallel()

	cmd := NewGenerateCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "generate [directory]" {
			t.Errorf("expected use 'generate [directory]', got %q", cmd.Use)
		}
	})

	t.Run("has title flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("title")
		if flag == nil {
			t.Fatal("expected title flag")
		}
		if flag.Shorthand != "t" {
			t.Errorf("expected shorthand 't', got %q", flag.Shorthand)
		}
	})

	t.Run("has content flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("content") == nil {
			t.Fatal("expected content flag")
		}
	})

	t.Run("has from flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("from")
		if flag == nil {
			t.Fatal("expected from flag")
		}
		if flag.Shorthand != "f" {
			t.Errorf("expected shorthand 'f', got %q", flag.Shorthand)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
	})

	t.Run("has template flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("template") == nil {
			t.Fatal("expected template flag")
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})
}

// TestGenerateCmdExecution tests the scan-then-render flow end to end.
func TestGenerateCmdExecution(t *testing.T) {
	t.Parallel()

	t.Run("writes page to output file", func(t *testing.T) {
		t.Parallel()

		root := scaffoldProject(t)
		outPath := filepath.Join(t.TempDir(), "out", "page.html")

		cmd := NewGenerateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{root, "--no-history",
			"-t", "Hello", "--content", "<p>World</p>", "-o", outPath})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("generate command failed: %v", err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("failed to read generated page: %v", err)
		}
		got := string(data)
		if !strings.Contains(got, "<title>Hello</title>") {
			t.Errorf("expected title substitution, got %q", got)
		}
		if !strings.Contains(got, "<p>World</p>") {
			t.Errorf("expected content markup to survive, got %q", got)
		}
		if strings.Contains(got, "{{title}}") || strings.Contains(got, "{{content}}") {
			t.Errorf("expected no remaining placeholders, got %q", got)
		}
	})

	t.Run("prints page to stdout without output flag", func(t *testing.T) {
		t.Parallel()

		root := scaffoldProject(t)

		cmd := NewGenerateCmd()
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetArgs([]string{root, "--no-history", "-t", "Stdout Page", "--content", "body"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("generate command failed: %v", err)
		}
		if !strings.Contains(buf.String(), "<h1>Stdout Page</h1>") {
			t.Errorf("expected page on stdout, got %q", buf.String())
		}
	})

	t.Run("loads title and content from markdown file", func(t *testing.T) {
		t.Parallel()

		root := scaffoldProject(t)
		mdPath := filepath.Join(t.TempDir(), "post.md")
		md := "---\ntitle: From Frontmatter\n---\n\n# Heading\n\nBody text.\n"
		if err := os.WriteFile(mdPath, []byte(md), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewGenerateCmd()
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetArgs([]string{root, "--no-history", "-f", mdPath})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("generate command failed: %v", err)
		}

		got := buf.String()
		if !strings.Contains(got, "<title>From Frontmatter</title>") {
			t.Errorf("expected frontmatter title, got %q", got)
		}
		if !strings.Contains(got, "Body text.") {
			t.Errorf("expected converted markdown body, got %q", got)
		}
	})

	t.Run("title flag overrides markdown title", func(t *testing.T) {
		t.Parallel()

		root := scaffoldProject(t)
		mdPath := filepath.Join(t.TempDir(), "post.md")
		if err := os.WriteFile(mdPath, []byte("---\ntitle: Ignored\n---\n\nBody.\n"), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewGenerateCmd()
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetArgs([]string{root, "--no-history", "-f", mdPath, "-t", "Explicit"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("generate command failed: %v", err)
		}
		if !strings.Contains(buf.String(), "<title>Explicit</title>") {
			t.Errorf("expected explicit title to win, got %q", buf.String())
		}
	})

	t.Run("uses project config from file", func(t *testing.T) {
		t.Parallel()

		root := scaffoldProject(t)
		if err := os.WriteFile(filepath.Join(root, "minimal.html"),
			[]byte("<html><body><p>{{title}}</p>{{content}}</body></html>"), 0600); err != nil {
			t.Fatal(err)
		}

		absRoot, err := filepath.Abs(root)
		if err != nil {
			t.Fatal(err)
		}

		configPath := filepath.Join(t.TempDir(), "pagegen.yml")
		configYAML := "projects:\n  \"" + absRoot + "\":\n    template: minimal.html\n    title: Configured Title\n"
		if err := os.WriteFile(configPath, []byte(configYAML), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewGenerateCmd()
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetArgs([]string{root, "--no-history", "-c", configPath, "--content", "x"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("generate command failed: %v", err)
		}
		if !strings.Contains(buf.String(), "<p>Configured Title</p>") {
			t.Errorf("expected configured template and title, got %q", buf.String())
		}
	})

	t.Run("fails when template is missing", func(t *testing.T) {
		t.Parallel()

		cmd := NewGenerateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{t.TempDir(), "--no-history", "-t", "x", "--content", "y"})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error when default.html is missing")
		}
	})

	t.Run("fails on explicit missing config file", func(t *testing.T) {
		t.Parallel()

		root := scaffoldProject(t)

		cmd := NewGenerateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{root, "--no-history",
			"-c", filepath.Join(t.TempDir(), "missing.yml"), "-t", "x"})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error for explicit missing config file")
		}
	})
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init [directory]" {
			t.Errorf("expected use 'init [directory]', got %q", cmd.Use)
		}
	})

	t.Run("has force flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("force")
		if flag == nil {
			t.Fatal("expected force flag")
		}
		if flag.Shorthand != "f" {
			t.Errorf("expected shorthand 'f', got %q", flag.Shorthand)
		}
	})
}

// TestInitCmdExecution tests project scaffolding.
func TestInitCmdExecution(t *testing.T) {
	t.Parallel()

	t.Run("scaffolds a new project", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "blog")

		cmd := NewInitCmd()
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetArgs([]string{root})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("init command failed: %v", err)
		}

		for _, name := range []string{"default.html", "index.html", ".pagegen"} {
			if _, err := os.Stat(filepath.Join(root, name)); err != nil {
				t.Errorf("expected scaffold file %s: %v", name, err)
			}
		}
		info, err := os.Stat(filepath.Join(root, "assets"))
		if err != nil || !info.IsDir() {
			t.Errorf("expected assets directory: %v", err)
		}

		tmpl, err := os.ReadFile(filepath.Join(root, "default.html"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(tmpl), "{{title}}") || !strings.Contains(string(tmpl), "{{content}}") {
			t.Error("expected scaffold template to contain placeholders")
		}
	})

	t.Run("skips existing files without force", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		custom := []byte("my own template")
		if err := os.WriteFile(filepath.Join(root, "default.html"), custom, 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewInitCmd()
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetArgs([]string{root})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("init command failed: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(root, "default.html"))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != string(custom) {
			t.Error("expected existing file to be preserved")
		}
		if !strings.Contains(buf.String(), "Skipping existing") {
			t.Errorf("expected skip notice, got %q", buf.String())
		}
	})

	t.Run("force overwrites existing files", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "default.html"), []byte("old"), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewInitCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{root, "-f"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("init command failed: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(root, "default.html"))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) == "old" {
			t.Error("expected force to overwrite the template")
		}
	})

	t.Run("scaffolded project generates a page", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "site")

		initCmd := NewInitCmd()
		initCmd.SetOut(&bytes.Buffer{})
		initCmd.SetArgs([]string{root})
		if err := initCmd.Execute(); err != nil {
			t.Fatalf("init command failed: %v", err)
		}

		genCmd := NewGenerateCmd()
		buf := &bytes.Buffer{}
		genCmd.SetOut(buf)
		genCmd.SetArgs([]string{root, "--no-history", "-t", "First Post", "--content", "<p>Hi</p>"})
		if err := genCmd.Execute(); err != nil {
			t.Fatalf("generate command failed: %v", err)
		}
		if !strings.Contains(buf.String(), "First Post") {
			t.Errorf("expected generated page with title, got %q", buf.String())
		}
	})
}

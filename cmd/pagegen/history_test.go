package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kanata-dev/pagegen/internal/history"
	"github.com/kanata-dev/pagegen/internal/model"
)

// TestNewHistoryCmd tests the history command creation.
func TestNewHistoryCmd(t *testing.T) {
	t.Parallel()

	cmd := NewHistoryCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "history" {
			t.Errorf("expected use 'history', got %q", cmd.Use)
		}
	})

	t.Run("has limit flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("limit")
		if flag == nil {
			t.Fatal("expected limit flag")
		}
		if flag.Shorthand != "n" {
			t.Errorf("expected shorthand 'n', got %q", flag.Shorthand)
		}
		if flag.DefValue != "20" {
			t.Errorf("expected default limit '20', got %q", flag.DefValue)
		}
	})

	t.Run("has db-dir flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("db-dir") == nil {
			t.Fatal("expected db-dir flag")
		}
	})
}

// TestHistoryCmdExecution tests listing recorded scans and pages.
func TestHistoryCmdExecution(t *testing.T) {
	t.Parallel()

	t.Run("fails when no database exists", func(t *testing.T) {
		t.Parallel()

		cmd := NewHistoryCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"--db-dir", t.TempDir()})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error when no history database exists")
		}
	})

	t.Run("lists recorded scans and pages", func(t *testing.T) {
		t.Parallel()

		dbDir := t.TempDir()
		db, err := history.Open(dbDir, history.DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}

		structure := &model.Structure{
			RootPath:   filepath.Join("/", "projects", "blog"),
			IndexPath:  filepath.Join("/", "projects", "blog", "index.html"),
			Categories: []string{"tech", "life"},
		}
		if _, err := db.SaveScan(context.Background(), structure); err != nil {
			t.Fatal(err)
		}

		page := model.NewGeneratedPage("Hello", "<html></html>")
		page.OutputPath = filepath.Join("/", "projects", "blog", "out.html")
		if _, err := db.SavePage(context.Background(), structure.RootPath, page); err != nil {
			t.Fatal(err)
		}
		if err := db.Close(); err != nil {
			t.Fatal(err)
		}

		cmd := NewHistoryCmd()
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"--db-dir", dbDir})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("history command failed: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "Recent scans:") {
			t.Errorf("expected scans section, got %q", output)
		}
		if !strings.Contains(output, structure.RootPath) {
			t.Errorf("expected scan root path in output, got %q", output)
		}
		if !strings.Contains(output, "(2 categories)") {
			t.Errorf("expected category count in output, got %q", output)
		}
		if !strings.Contains(output, `"Hello"`) {
			t.Errorf("expected page title in output, got %q", output)
		}
	})
}

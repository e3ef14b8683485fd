package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kanata-dev/pagegen/internal/config"
	"github.com/kanata-dev/pagegen/internal/history"
	"github.com/kanata-dev/pagegen/internal/log"
	"github.com/kanata-dev/pagegen/internal/model"
	"github.com/kanata-dev/pagegen/internal/report"
	"github.com/kanata-dev/pagegen/internal/site"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Classify a site project directory",
		Long: `Scan enumerates one directory level and classifies its contents into a
site structure: an index.html file, an assets folder, and the content
category subdirectories. Hidden directories (names starting with a
dot) are skipped.

Examples:
  # Scan the current directory
  pagegen scan

  # Scan a specific project
  pagegen scan ~/sites/blog

  # Scan several projects at once
  pagegen scan ~/sites/blog ~/sites/docs

  # Output a JSON report
  pagegen scan --json ~/sites/blog

  # Write a Markdown report to a file
  pagegen scan --markdown -o report.md ~/sites/blog

  # Create a starter index.html if the root has none
  pagegen scan --create-index ~/sites/blog`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Scan behavior flags
	cmd.Flags().Bool("create-index", false,
		"Create a starter index.html in roots that are missing one")
	cmd.Flags().Bool("no-history", false,
		"Do not record this scan in the history database")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildScanConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	return runScan(cmd.Context(), cfg, logger, cmd.OutOrStdout())
}

// buildScanConfig creates a Config from cobra command flags.
func buildScanConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.CreateIndex, err = cmd.Flags().GetBool("create-index")
	if err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory = !noHistory

	// Positional arguments are project directories; default to the
	// current directory.
	cfg.Targets = args
	if len(cfg.Targets) == 0 {
		cfg.Targets = []string{"."}
	}

	return cfg, nil
}

// runScan executes the scan for each target directory.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	db := openHistory(cfg, logger)
	if db != nil {
		defer db.Close()
	}

	var firstErr error
	for _, target := range cfg.Targets {
		structure, err := site.Scan(target)
		if err != nil {
			logger.Error("scan failed", "target", target, "error", err)
			fmt.Fprintf(os.Stderr, "Scan error for %s: %v\n", target, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if cfg.CreateIndex && !structure.HasIndex() {
			structure, err = createStarterIndex(structure)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %s\n", structure.IndexPath)
		}

		logger.Debug("scan complete",
			"root", structure.RootPath,
			"categories", len(structure.Categories),
			"hasIndex", structure.HasIndex(),
		)

		if err := outputStructure(cfg, structure); err != nil {
			return err
		}

		saveScan(ctx, db, structure, logger)
	}

	return firstErr
}

// openHistory opens the history database if saving is enabled.
// Failures are logged and treated as "no history", never fatal.
func openHistory(cfg *config.Config, logger *slog.Logger) *history.DB {
	if !cfg.SaveHistory {
		return nil
	}
	db, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
	if err != nil {
		logger.Warn("history database unavailable", "dir", cfg.HistoryDir, "error", err)
		return nil
	}
	return db
}

// saveScan records the scan in the history database.
// If db is nil, this function is a no-op.
func saveScan(ctx context.Context, db *history.DB, structure *model.Structure, logger *slog.Logger) {
	if db == nil {
		return
	}
	if _, err := db.SaveScan(ctx, structure); err != nil {
		logger.Error("failed to save scan record", "root", structure.RootPath, "error", err)
		return
	}
	logger.Debug("scan recorded", "root", structure.RootPath)
}

// createStarterIndex writes the embedded starter index.html into the
// root and rescans so the returned structure reflects the new file.
func createStarterIndex(structure *model.Structure) (*model.Structure, error) {
	starter, err := scaffoldFS.ReadFile("templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to read starter index template: %w", err)
	}

	indexPath := filepath.Join(structure.RootPath, site.IndexFileName)
	if err := os.WriteFile(indexPath, starter, 0600); err != nil {
		return nil, fmt.Errorf("failed to create index file: %w", err)
	}

	return site.Scan(structure.RootPath)
}

// outputStructure outputs the scan result in the requested format.
func outputStructure(cfg *config.Config, structure *model.Structure) error {
	output, closeOutput, err := reportDestination(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	// JSON output
	if cfg.JSONReport {
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(structure)
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.WriteStructure(structure)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output)
	_, err = writer.WriteStructure(structure)
	return err
}

// reportDestination opens the report target: the given file path, or
// stdout when the path is empty. The returned func closes the file
// when one was opened.
func reportDestination(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // Report path is user-chosen
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil //nolint:errcheck // Best effort close for report output
}

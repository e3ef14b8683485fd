package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kanata-dev/pagegen/internal/config"
	"github.com/kanata-dev/pagegen/internal/content"
	"github.com/kanata-dev/pagegen/internal/history"
	"github.com/kanata-dev/pagegen/internal/log"
	"github.com/kanata-dev/pagegen/internal/model"
	"github.com/kanata-dev/pagegen/internal/render"
	"github.com/kanata-dev/pagegen/internal/session"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [directory]",
		Short: "Generate an HTML page from the project template",
		Long: `Generate scans the project directory, loads its HTML template
(default.html in the project root unless overridden), substitutes the
{{title}} and {{content}} placeholders, and emits the final HTML.

The result is printed to stdout unless --output is given.

Examples:
  # Generate a page from explicit title and content
  pagegen generate ~/sites/blog --title "Hello" --content "<p>World</p>"

  # Generate from a Markdown file with frontmatter
  pagegen generate ~/sites/blog --from posts/hello.md

  # Write the page to a file
  pagegen generate ~/sites/blog --title "Hello" --content "World" -o out.html

  # Use a different template inside the project root
  pagegen generate ~/sites/blog --template minimal.html --title "Hi"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("title", "t", "", "Page title substituted for {{title}}")
	cmd.Flags().String("content", "", "Page content substituted for {{content}}")
	cmd.Flags().StringP("from", "f", "",
		"Load title and content from a Markdown file (frontmatter title, body converted to HTML)")
	cmd.Flags().StringP("output", "o", "", "Write the generated HTML to this file instead of stdout")
	cmd.Flags().String("template", "", "Template file name inside the project root")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pagegen in current or home directory)")
	cmd.Flags().Bool("no-history", false,
		"Do not record this page in the history database")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildGenerateConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	title, err := cmd.Flags().GetString("title")
	if err != nil {
		return err
	}
	pageContent, err := cmd.Flags().GetString("content")
	if err != nil {
		return err
	}
	from, err := cmd.Flags().GetString("from")
	if err != nil {
		return err
	}

	return runGenerate(cmd, cfg, logger, title, pageContent, from)
}

// buildGenerateConfig creates a Config from cobra command flags.
func buildGenerateConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.TemplateName, err = cmd.Flags().GetString("template")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory = !noHistory

	// Load per-project configurations from the config file.
	// An explicitly specified path must exist; otherwise a missing
	// file just means empty configuration.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Projects, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.Projects = &config.File{
			Projects: make(map[string]config.ProjectConfig),
		}
	}

	cfg.Targets = args
	if len(cfg.Targets) == 0 {
		cfg.Targets = []string{"."}
	}

	return cfg, nil
}

// runGenerate performs the scan-then-render flow for one project.
func runGenerate(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, title, pageContent, from string) error {
	s := session.New()

	structure, err := s.Scan(cfg.Targets[0])
	if err != nil {
		return err
	}

	projectCfg := cfg.Projects.GetProjectConfig(structure.RootPath)

	// Template resolution: flag > project config > default.html.
	templateName := cfg.TemplateName
	if templateName == "" {
		templateName = projectCfg.Template
	}
	if templateName != "" {
		s.SetTemplateName(templateName)
	}

	// Markdown input supplies both content and, unless overridden,
	// the title.
	if from != "" {
		doc, err := content.LoadMarkdown(from)
		if err != nil {
			return err
		}
		pageContent = doc.HTML
		if title == "" {
			title = doc.Title
		}
	}
	if title == "" {
		title = projectCfg.Title
	}

	page, err := s.Generate(title, pageContent)
	if err != nil {
		if errors.Is(err, session.ErrNoProjectSelected) {
			return fmt.Errorf("no project selected: %w", err)
		}
		return err
	}

	logger.Debug("page generated",
		"root", structure.RootPath,
		"title", page.Title,
		"bytes", page.Size,
	)

	// Output resolution: flag > project config > stdout.
	outputPath := cfg.OutputFile
	if outputPath == "" {
		outputPath = projectCfg.Output
	}

	if outputPath != "" {
		if err := render.WritePage(outputPath, page.HTML); err != nil {
			return err
		}
		page.OutputPath = outputPath
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d bytes)\n", outputPath, page.Size)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), page.HTML)
	}

	savePage(cmd.Context(), cfg, structure.RootPath, page, logger)
	return nil
}

// savePage records the generated page in the history database.
// History failures are logged, never fatal: the page was already
// delivered to the caller.
func savePage(ctx context.Context, cfg *config.Config, rootPath string, page *model.GeneratedPage, logger *slog.Logger) {
	if !cfg.SaveHistory {
		return
	}

	db, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
	if err != nil {
		logger.Warn("history database unavailable", "dir", cfg.HistoryDir, "error", err)
		return
	}
	defer db.Close()

	if _, err := db.SavePage(ctx, rootPath, page); err != nil {
		logger.Error("failed to save page record", "root", rootPath, "error", err)
		return
	}
	logger.Debug("page recorded", "root", rootPath, "hash", page.Hash)
}

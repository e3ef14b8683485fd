package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kanata-dev/pagegen/internal/config"
	"github.com/kanata-dev/pagegen/internal/session"
	"github.com/kanata-dev/pagegen/internal/site"
)

//go:embed templates
var scaffoldFS embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold a new site project",
		Long: `Init creates the skeleton of a new site project in the given
directory (default: current directory):

  default.html   the page template with {{title}} and {{content}}
  index.html     a starter index page
  assets/        the reserved assets directory
  .pagegen       a commented configuration file

Existing files are left alone unless --force is given.

Examples:
  # Scaffold into the current directory
  pagegen init

  # Scaffold a new project directory
  pagegen init ~/sites/blog

  # Overwrite existing scaffold files
  pagegen init -f ~/sites/blog`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInitCmd,
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite existing scaffold files")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	if err := os.MkdirAll(root, 0750); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(root, site.AssetsDirName), 0750); err != nil {
		return fmt.Errorf("failed to create assets directory: %w", err)
	}

	files := map[string]string{
		session.DefaultTemplateName: "templates/default.html",
		site.IndexFileName:          "templates/index.html",
		config.DefaultConfigFile:    "templates/pagegen.yaml",
	}

	for name, embedded := range files {
		target := filepath.Join(root, name)

		if !force {
			if _, err := os.Stat(target); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipping existing %s (use -f to overwrite)\n", target)
				continue
			}
		}

		data, err := scaffoldFS.ReadFile(embedded)
		if err != nil {
			return fmt.Errorf("failed to read scaffold template %s: %w", embedded, err)
		}
		if err := os.WriteFile(target, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", target)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nProject scaffolded. Next steps:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  pagegen scan %s\n", root)
	fmt.Fprintf(cmd.OutOrStdout(), "  pagegen generate %s --title \"Hello\" --content \"World\"\n", root)

	return nil
}

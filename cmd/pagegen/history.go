package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kanata-dev/pagegen/internal/config"
	"github.com/kanata-dev/pagegen/internal/history"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scans and generated pages",
		Long: `History lists the most recent directory scans and page generations
recorded in the local database. Every scan and generate run is
recorded automatically unless --no-history was passed.

Examples:
  # Show the last 20 entries
  pagegen history

  # Show the last 5 entries
  pagegen history --limit 5`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit, "Maximum number of entries to show per section")
	cmd.Flags().String("db-dir", "", "Directory holding the history database (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	db, err := history.Open(dbDir, history.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no history recorded yet: %w", err)
	}
	defer db.Close()

	out := cmd.OutOrStdout()

	scans, err := db.RecentScans(cmd.Context(), limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Recent scans:")
	if len(scans) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, s := range scans {
		marker := " "
		if s.HasIndex {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %s %s (%d categories)\n",
			s.Timestamp.Local().Format(time.DateTime), marker, s.RootPath, len(s.Categories))
	}

	pages, err := db.RecentPages(cmd.Context(), limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nRecent pages:")
	if len(pages) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, p := range pages {
		dest := p.OutputPath
		if dest == "" {
			dest = "(stdout)"
		}
		fmt.Fprintf(out, "  %s   %q -> %s (%d bytes)\n",
			p.Timestamp.Local().Format(time.DateTime), p.Title, dest, p.Size)
	}

	return nil
}

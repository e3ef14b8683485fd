package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kanata-dev/pagegen/internal/config"
	"github.com/kanata-dev/pagegen/internal/log"
	"github.com/kanata-dev/pagegen/internal/site"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [directory]",
		Short: "Serve a site project locally and watch for changes",
		Long: `Serve starts a local web server over the project directory so the
generated pages can be previewed in a browser. The directory is
watched, and every change triggers a rescan so structure changes (new
categories, a created index.html) show up in the log immediately.

Responses carry no-cache headers so the browser always sees the
current file contents.

Examples:
  # Serve the current directory on the default port
  pagegen serve

  # Serve a project on a specific port
  pagegen serve -p 3000 ~/sites/blog`,
		Args: cobra.MaximumNArgs(1),
		RunE: runServeCmd,
	}

	cmd.Flags().IntP("port", "p", config.DefaultServePort, "Port to serve the site on")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return err
	}
	cfg.ServePort = port
	cfg.PortFromFlag = cmd.Flags().Changed("port")

	cfg.Targets = args
	if len(cfg.Targets) == 0 {
		cfg.Targets = []string{"."}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Stop on Ctrl+C or SIGTERM.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runServe(ctx, cfg, logger)
}

// runServe scans the project, then runs the file server and the
// change watcher until the context is cancelled.
func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	structure, err := site.Scan(cfg.Targets[0])
	if err != nil {
		return err
	}

	// A project-level servePort in the config file wins over the
	// default, but an explicit --port wins over both. PortFromFlag
	// marks the explicit case.
	if !cfg.PortFromFlag {
		if configPath := config.FindConfigFile(""); configPath != "" {
			if projects, err := config.LoadConfigFile(configPath); err == nil {
				if port := projects.GetProjectConfig(structure.RootPath).ServePort; port != 0 {
					cfg.ServePort = port
				}
			}
		}
	}

	fmt.Printf("Serving %s on http://localhost:%d\n", structure.RootPath, cfg.ServePort)
	fmt.Println("Press Ctrl+C to stop.")

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServePort),
		Handler:           noCacheHandler(http.FileServer(http.Dir(structure.RootPath))),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return watchRoot(ctx, structure.RootPath, logger)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// noCacheHandler disables caching so edits show up on reload during
// development.
func noCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// watchRoot watches the project root and rescans on changes.
// Rescans are debounced so a burst of editor events triggers one scan.
func watchRoot(ctx context.Context, root string, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	const debounce = 500 * time.Millisecond
	var rescanTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if rescanTimer != nil {
				rescanTimer.Stop()
			}
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

			if rescanTimer != nil {
				rescanTimer.Stop()
			}
			rescanTimer = time.AfterFunc(debounce, func() {
				structure, err := site.Scan(root)
				if err != nil {
					logger.Error("rescan failed", "root", root, "error", err)
					return
				}
				logger.Info("structure updated",
					"root", structure.RootPath,
					"categories", len(structure.Categories),
					"hasIndex", structure.HasIndex(),
				)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

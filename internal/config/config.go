package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "pagegen"

	// DefaultTemplateName is the template file looked up inside a
	// scanned project root when the config file does not override it.
	DefaultTemplateName = "default.html"

	// DefaultServePort is the local preview server port. 8080 is the
	// conventional development port and rarely needs privileges.
	DefaultServePort = 8080

	// DefaultHistoryLimit is how many history rows commands show when
	// no explicit limit is given. Twenty rows fit on one screen.
	DefaultHistoryLimit = 20
)

// Config holds all options for a pagegen invocation.
// It is populated from CLI flags and passed through the application
// via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested
// structs per command. The number of options is manageable, and
// nesting would add complexity without significant benefit.
type Config struct {
	// Targets is the list of project directories to operate on.
	// Most commands require exactly one; scan accepts several.
	Targets []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .pagegen in the current
	// directory and then in the user's home directory.
	ConfigFilePath string

	// Projects holds per-project configurations loaded from the
	// config file. Populated by LoadConfigFile.
	Projects *File

	// TemplateName overrides the template file name for generation.
	// Empty means DefaultTemplateName (or the project config value).
	TemplateName string

	// JSONReport enables JSON report output instead of the
	// human-readable format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for scan reports.
	// When set, the report is written there instead of stdout.
	ReportFile string

	// OutputFile is where generated HTML is written.
	// When empty, the HTML is printed to stdout.
	OutputFile string

	// CreateIndex makes scan write a starter index.html into roots
	// that are missing one.
	CreateIndex bool

	// SaveHistory controls whether scans and generated pages are
	// recorded in the history database.
	SaveHistory bool

	// HistoryDir is the directory holding the history database.
	// Defaults to the XDG data directory.
	HistoryDir string

	// ServePort is the port for the local preview server.
	ServePort int

	// PortFromFlag records whether ServePort was set explicitly on
	// the command line. Explicit ports beat config file overrides.
	PortFromFlag bool
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor instead of relying on zero
// values because several defaults are non-zero, and the constructor
// doubles as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		SaveHistory: true,
		HistoryDir:  XDGDataDir(),
		ServePort:   DefaultServePort,
	}
}

// XDGDataDir returns the XDG data directory for pagegen.
// On Linux: ~/.local/share/pagegen
// On macOS: ~/Library/Application Support/pagegen
// On Windows: %LOCALAPPDATA%\pagegen
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for pagegen.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate once after CLI parsing rather than at
// each point of use, to fail fast with a clear message. The first
// error found is returned; fixing one error often makes others
// irrelevant.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.ServePort <= 0 || c.ServePort > 65535 {
		return ErrInvalidPort
	}

	return nil
}

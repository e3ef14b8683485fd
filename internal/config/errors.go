package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). That lets callers use
// errors.Is() for programmatic handling while the messages stay
// human-readable.
var (
	// ErrNoTarget is returned when no project directory is specified.
	ErrNoTarget = errors.New("no target specified: provide a project directory")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidPort is returned when the serve port is outside the
	// valid TCP port range.
	ErrInvalidPort = errors.New("invalid port: must be between 1 and 65535")
)

// Package log provides logging helpers built on the standard slog
// package.
//
// The TidyHandler shortens filesystem paths in log attributes by
// replacing the user's home directory prefix with "~". Scans and
// renders log many absolute paths; tidying them keeps output readable
// and avoids leaking the local account name when logs are shared.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Info("scan complete", "root", "/home/user/sites/blog")
//	// logs root=~/sites/blog
package log

package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// WritePage writes rendered HTML to the given path, creating parent
// directories as needed. Create failures and write failures are
// reported with distinct error kinds so callers can tell "the path
// could not be opened" from "the disk filled up mid-write".
func WritePage(path, htmlText string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("%w: %v", ErrCreateOutput, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // Output path is user-chosen
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutput, err)
	}

	if _, err := f.WriteString(htmlText); err != nil {
		_ = f.Close() //nolint:errcheck // Best effort cleanup
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kanata-dev/pagegen/internal/model"
)

// Reserved names recognized during classification.
const (
	// IndexFileName is the root index file. Matching is exact and
	// case-sensitive: "Index.html" is not an index file.
	IndexFileName = "index.html"

	// AssetsDirName is the reserved assets directory. It is recorded
	// separately and never appears in the category list.
	AssetsDirName = "assets"
)

// Scan classifies the directory at path into a site structure.
// The returned structure reflects a single enumeration pass of the
// immediate children; Scan never recurses into subdirectories.
//
// Scan has no side effects. It only reads filesystem metadata.
//
// Design decision: Entries whose metadata cannot be read (permission
// issues, files removed mid-enumeration) are skipped silently rather
// than failing the scan. A scan is a best-effort snapshot; a partially
// unreadable directory still yields a usable structure.
func Scan(path string) (*model.Structure, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, abs)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryRead, err)
	}

	return classify(abs, entries), nil
}

// classify builds the structure from one enumeration pass over the
// immediate children of root.
func classify(root string, entries []os.DirEntry) *model.Structure {
	structure := &model.Structure{
		RootPath:   root,
		Categories: make([]string, 0, len(entries)),
	}

	for _, entry := range entries {
		entryInfo, err := entry.Info()
		if err != nil {
			// Best-effort: skip entries that vanished or cannot be
			// stat'ed instead of surfacing a partial failure.
			continue
		}

		name := entry.Name()
		switch {
		case entryInfo.Mode().IsRegular() && name == IndexFileName:
			structure.IndexPath = filepath.Join(root, name)

		case entryInfo.IsDir():
			switch {
			case name == AssetsDirName:
				structure.AssetsPath = filepath.Join(root, name)
			case strings.HasPrefix(name, "."):
				// Hidden directories are not categories.
			default:
				structure.Categories = append(structure.Categories, name)
			}
		}
	}

	return structure
}

package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Structure is an immutable snapshot of one directory scan.
// It describes the layout of a site project: whether the root has an
// index file, whether it has an assets directory, and which content
// category subdirectories exist.
//
// Design decision: Structure is constructed fresh on every scan and
// never mutated afterwards. A new scan of the same or a different root
// supersedes the previous snapshot entirely rather than merging into
// it. This keeps the scan result a consistent view of a single
// enumeration pass.
type Structure struct {
	// RootPath is the absolute path of the scanned directory.
	// It is the identity key for the scan.
	RootPath string `json:"root_path"`

	// IndexPath is the path to an index.html file directly inside the
	// root, or empty if the root has no index file.
	IndexPath string `json:"index_path,omitempty"`

	// AssetsPath is the path to a subdirectory literally named
	// "assets", or empty if the root has none.
	AssetsPath string `json:"assets_path,omitempty"`

	// Categories holds the names of the content subdirectories in
	// enumeration order. It never contains "assets" or any name
	// beginning with a dot.
	Categories []string `json:"categories"`
}

// HasIndex reports whether the root contains an index.html file.
func (s *Structure) HasIndex() bool {
	return s.IndexPath != ""
}

// HasAssets reports whether the root contains an assets directory.
func (s *Structure) HasAssets() bool {
	return s.AssetsPath != ""
}

// ProjectName returns the base name of the scanned root.
// This is the raw directory name, suitable for identifiers.
func (s *Structure) ProjectName() string {
	return filepath.Base(s.RootPath)
}

// titleCaser is shared across calls; cases.Caser values are not cheap
// to construct.
var titleCaser = cases.Title(language.English)

// DisplayName returns a human-readable project name derived from the
// root directory name. Hyphens and underscores become spaces and each
// word is title-cased, so "my-first_site" becomes "My First Site".
func (s *Structure) DisplayName() string {
	name := s.ProjectName()
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return titleCaser.String(name)
}

// String renders the structure as a multi-line human-readable block.
// Missing index and assets entries are reported as "not found".
func (s *Structure) String() string {
	indexStatus := "not found"
	if s.HasIndex() {
		indexStatus = s.IndexPath
	}
	assetsStatus := "not found"
	if s.HasAssets() {
		assetsStatus = s.AssetsPath
	}
	return fmt.Sprintf(
		"SiteStructure:\n  Root: %s\n  Index: %s\n  Assets: %s\n  Categories: [%s]",
		s.RootPath, indexStatus, assetsStatus, strings.Join(s.Categories, ", "),
	)
}

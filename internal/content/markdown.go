package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Document is a loaded Markdown source file: frontmatter metadata plus
// the body converted to HTML.
type Document struct {
	// Title comes from the frontmatter "title" field, or is derived
	// from the file name when the frontmatter has none.
	Title string

	// HTML is the Markdown body converted to HTML.
	HTML string

	// Meta holds the full frontmatter mapping for callers that want
	// fields beyond the title.
	Meta map[string]any
}

// mdConverter is the shared Markdown engine. GFM tables and strikethrough,
// automatic heading IDs, and hard line breaks match what site authors
// expect from hosted renderers.
var mdConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// LoadMarkdown reads a Markdown file, parses optional YAML
// frontmatter, and converts the body to HTML.
//
// Files without frontmatter are treated as pure Markdown rather than
// rejected; a missing title falls back to a name derived from the
// file name.
func LoadMarkdown(path string) (*Document, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // User-provided content path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	meta := make(map[string]any)
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		// No frontmatter (or unparseable frontmatter): use the whole
		// file as the body.
		body = raw
		meta = make(map[string]any)
	}

	var htmlBuf bytes.Buffer
	if err := mdConverter.Convert(body, &htmlBuf); err != nil {
		return nil, fmt.Errorf("failed to convert markdown in %s: %w", path, err)
	}

	doc := &Document{
		HTML: htmlBuf.String(),
		Meta: meta,
	}

	if title, ok := meta["title"].(string); ok && title != "" {
		doc.Title = title
	} else {
		doc.Title = titleFromFileName(path)
	}

	return doc, nil
}

// titleCaser is shared across calls; cases.Caser values are not cheap
// to construct.
var titleCaser = cases.Title(language.English)

// titleFromFileName derives a page title from a file name:
// "getting-started_guide.md" becomes "Getting Started Guide".
func titleFromFileName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	return titleCaser.String(base)
}

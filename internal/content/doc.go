// Package content loads page content from Markdown source files.
// It extracts YAML frontmatter metadata and converts the Markdown body
// to HTML suitable for template substitution.
package content

package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/kanata-dev/pagegen/internal/model"
)

// MarkdownWriter outputs scan reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
//  3. GitHub-flavored markdown output
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteStructure outputs the structure in Markdown format.
func (w *MarkdownWriter) WriteStructure(structure *model.Structure) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Site Structure Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Project", structure.DisplayName()},
			{"Root", "`" + structure.RootPath + "`"},
			{"Index", w.pathCell(structure.IndexPath)},
			{"Assets", w.pathCell(structure.AssetsPath)},
			{"Categories", strconv.Itoa(len(structure.Categories))},
		},
	})
	md.PlainText("")

	if len(structure.Categories) > 0 {
		md.H2("Categories")
		md.BulletList(structure.Categories...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// pathCell renders an optional path as a table cell.
func (w *MarkdownWriter) pathCell(path string) string {
	if path == "" {
		return "not found"
	}
	return "`" + path + "`"
}

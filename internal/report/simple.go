package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kanata-dev/pagegen/internal/model"
)

// SimpleWriter outputs a human-readable plain-text report.
// The shape follows the tool's classic console output: root, index,
// assets, then the category list.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteStructure outputs the structure in plain text.
func (w *SimpleWriter) WriteStructure(structure *model.Structure) (int, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", structure.DisplayName())
	b.WriteString(structure.String())
	b.WriteString("\n")

	if !structure.HasIndex() {
		b.WriteString("\nNote: no index.html found in the project root.\n")
		b.WriteString("Run 'pagegen scan --create-index' to create a starter one.\n")
	}

	return io.WriteString(w.output, b.String())
}

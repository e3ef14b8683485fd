package report

import (
	"io"

	"github.com/kanata-dev/pagegen/internal/model"
)

// Writer defines the interface for scan report output.
// Implementations write a site structure in various formats.
//
// Design decision: We use an interface so the CLI can pick a format
// at runtime and write to stdout, a file, or both with the same API.
type Writer interface {
	// WriteStructure outputs the structure to the configured
	// destination. Returns the number of bytes written and any error.
	WriteStructure(structure *model.Structure) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// Useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteStructure outputs the structure to all configured Writers.
// Returns the total bytes written; stops on the first error.
func (m *MultiWriter) WriteStructure(structure *model.Structure) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteStructure(structure)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

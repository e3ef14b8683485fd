package render

import "errors"

// Render errors.
//
// Design decision: One sentinel per failure stage. Every failure aborts
// the render and is returned to the immediate caller; nothing is
// retried and no partial output is returned. Callers match the stage
// with errors.Is() and display the wrapped detail.
var (
	// ErrTemplateRead is returned when the template file is missing,
	// unreadable, or not valid UTF-8 text.
	ErrTemplateRead = errors.New("failed to read template")

	// ErrParse is returned when the template content cannot be
	// interpreted as a document. The HTML parser is lenient, so this
	// is reserved for catastrophic failures.
	ErrParse = errors.New("failed to parse template")

	// ErrSerialize is returned when the document tree cannot be
	// converted back to HTML text. This should not occur for
	// well-formed trees.
	ErrSerialize = errors.New("failed to serialize HTML")

	// ErrCreateOutput is returned when the output file or its parent
	// directories cannot be created.
	ErrCreateOutput = errors.New("failed to create output file")

	// ErrWriteOutput is returned when writing the rendered HTML to an
	// already-created output file fails.
	ErrWriteOutput = errors.New("failed to write output file")
)

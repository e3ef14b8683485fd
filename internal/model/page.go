package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// GeneratedPage records the result of one render operation.
//
// Design decision: We store the final HTML together with a SHA-256
// hash of it because:
//  1. The hash allows deduplication and change detection in history
//  2. The byte size is useful for reporting without reloading the HTML
//  3. Keeping the record immutable mirrors Structure's lifecycle
type GeneratedPage struct {
	// Title is the title that was substituted into the template.
	Title string `json:"title"`

	// HTML is the final serialized document.
	HTML string `json:"-"` // Excluded from JSON to keep reports small

	// Hash is the SHA-256 hash of the HTML, hex encoded.
	Hash string `json:"hash"`

	// Size is the length of the HTML in bytes.
	Size int `json:"size"`

	// OutputPath is where the page was written, or empty if the page
	// was only returned to the caller.
	OutputPath string `json:"output_path,omitempty"`

	// RenderedAt is when the render completed.
	RenderedAt time.Time `json:"rendered_at"`
}

// NewGeneratedPage creates a GeneratedPage for the given title and
// final HTML, computing the content hash and timestamp.
func NewGeneratedPage(title, html string) *GeneratedPage {
	sum := sha256.Sum256([]byte(html))
	return &GeneratedPage{
		Title:      title,
		HTML:       html,
		Hash:       hex.EncodeToString(sum[:]),
		Size:       len(html),
		RenderedAt: time.Now(),
	}
}

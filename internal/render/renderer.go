package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Placeholder tokens recognized inside template text nodes.
// These are the wire contract between template authors and the
// renderer: both tokens are matched literally, all occurrences are
// replaced, and tokens inside attribute values or tag names are never
// substituted.
const (
	TokenTitle   = "{{title}}"
	TokenContent = "{{content}}"
)

// Render loads the template at templatePath, substitutes the
// placeholder tokens with title and content, and returns the final
// HTML text. The renderer never writes to disk; see WritePage.
func Render(templatePath, title, content string) (string, error) {
	raw, err := os.ReadFile(templatePath) //nolint:gosec // Template path comes from the scanned project root
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrTemplateRead, templatePath)
	}
	return RenderReader(bytes.NewReader(raw), title, content)
}

// RenderReader renders a template supplied as a reader instead of a
// file path. This is the in-memory variant of Render.
//
// Design decision: We parse with golang.org/x/net/html rather than
// treating the template as a flat string because:
//  1. It tolerates malformed HTML the way browsers do (unclosed tags,
//     implicit <html>/<body> wrapping)
//  2. Substitution can be scoped to text nodes only, so tokens inside
//     attributes or tag names are never touched
//  3. Serialization reproduces a well-formed document regardless of
//     how sloppy the input was
func RenderReader(r io.Reader, title, content string) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}

	substitute(doc, title, content)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return buf.String(), nil
}

// substitute walks the tree in pre-order and replaces every occurrence
// of both tokens in every text node, leaving surrounding text in the
// node untouched. The walk visits all descendants; there is no early
// termination after a match.
//
// A text node containing tokens is split: the template text between
// tokens stays in ordinary text nodes, so author-escaped entities keep
// their escaping, while each inserted title or content value becomes a
// raw node emitted without HTML-escaping, so markup inside the inputs
// is interpreted as markup in the final document. Nodes without tokens
// are never touched, which preserves the no-placeholder round trip.
func substitute(n *html.Node, title, content string) {
	for c := n.FirstChild; c != nil; {
		// The child may be replaced by its split segments; save the
		// sibling first so the walk continues past the removal.
		next := c.NextSibling
		substitute(c, title, content)
		c = next
	}

	if n.Type != html.TextNode {
		return
	}
	if !strings.Contains(n.Data, TokenTitle) && !strings.Contains(n.Data, TokenContent) {
		return
	}
	parent := n.Parent
	if parent == nil {
		return
	}

	for _, seg := range splitTokens(n.Data, title, content) {
		if seg.text == "" {
			continue
		}
		node := &html.Node{Type: html.TextNode, Data: seg.text}
		if seg.raw {
			node.Type = html.RawNode
		}
		parent.InsertBefore(node, n)
	}
	parent.RemoveChild(n)
}

// segment is one piece of a split text node: literal template text, or
// a substituted input value emitted raw.
type segment struct {
	text string
	raw  bool
}

// splitTokens cuts data at every token occurrence, in left-to-right
// order, pairing each token with its input value. Text between tokens
// is returned verbatim.
func splitTokens(data, title, content string) []segment {
	var segs []segment
	for data != "" {
		ti := strings.Index(data, TokenTitle)
		ci := strings.Index(data, TokenContent)
		if ti < 0 && ci < 0 {
			segs = append(segs, segment{text: data})
			break
		}

		idx, token, value := ti, TokenTitle, title
		if ti < 0 || (ci >= 0 && ci < ti) {
			idx, token, value = ci, TokenContent, content
		}

		if idx > 0 {
			segs = append(segs, segment{text: data[:idx]})
		}
		segs = append(segs, segment{text: value, raw: true})
		data = data[idx+len(token):]
	}
	return segs
}

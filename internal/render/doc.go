// Package render generates HTML pages from templates by DOM
// placeholder substitution.
//
// A template is parsed with browser-grade leniency, every text node is
// scanned for the literal tokens {{title}} and {{content}}, matching
// tokens are replaced with caller-supplied values, and the mutated
// tree is serialized back to HTML text. The package also writes final
// pages to disk, reporting create and write failures distinctly.
package render

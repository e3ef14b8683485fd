// Package site classifies a directory into a site structure.
//
// A scan enumerates exactly one directory level and records three
// things: an index.html file directly inside the root, a subdirectory
// literally named "assets", and the remaining subdirectories as
// content categories. Dot-prefixed directories are skipped.
package site

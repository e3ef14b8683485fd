// Package report renders scan results for human and machine
// consumption. It provides a plain-text writer mirroring the classic
// console output and a Markdown writer for documentation and sharing.
package report

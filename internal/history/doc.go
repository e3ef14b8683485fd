// Package history provides SQLite-based storage for scan and
// generation history. It records each directory scan and each
// generated page so past activity can be listed and compared.
package history

// Package session coordinates directory scanning and page generation.
//
// A Session owns the "currently selected project" state: the last
// successfully scanned site structure. Generation requires a prior
// scan, which makes the dependency between the two operations explicit
// instead of hiding it in process-wide state.
package session

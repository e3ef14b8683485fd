// Package main provides the entry point for the pagegen CLI.
//
// pagegen classifies a site project directory into a site structure
// and generates HTML pages by substituting a title and content into an
// HTML template.
//
// Usage:
//
//	pagegen scan <directory>
//	pagegen generate <directory> --title "Hello" --content "World"
//
// See --help for all available options.
package main

// main is the entry point for pagegen.
func main() {
	Execute()
}

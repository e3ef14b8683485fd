// Package config provides configuration structures and utilities for
// pagegen. It defines the options for scanning site projects,
// generating pages, and report output preferences.
package config

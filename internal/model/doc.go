// Package model defines the core data structures shared across pagegen.
// It contains the site structure produced by directory classification
// and the generated page record produced by template rendering.
package model

// Package render keeps the set of template engines a caller can render
// schemes with, keyed by engine name.
package render

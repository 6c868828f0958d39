// Package template defines the seam between scheme content and template
// engines. Engines only see FieldContent: a text hook for placeholders and a
// boolean hook for sections.
package template

package scheme

import (
	"maps"
	"slices"
	"strings"

	"github.com/goliatone/go-base16/pkg/color"
)

// Scheme is a named palette of up to 256 indexed colours. The slug is not
// part of the document; it is derived from Name by WithSlug and never
// serialised. A Scheme is not mutated after WithSlug, so it can be shared by
// concurrent renders.
type Scheme struct {
	Name   string
	Author string
	Colors map[color.Index]color.RGB

	slug string
}

// New builds a scheme from a copy of colors. The slug is left empty.
func New(name, author string, colors map[color.Index]color.RGB) *Scheme {
	s := &Scheme{
		Name:   name,
		Author: author,
		Colors: make(map[color.Index]color.RGB, len(colors)),
	}
	maps.Copy(s.Colors, colors)
	return s
}

// Slugify lowercases name and replaces spaces with dashes.
func Slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

// WithSlug returns a copy of s with the slug derived from its name.
func (s *Scheme) WithSlug() *Scheme {
	out := *s
	out.slug = Slugify(s.Name)
	return &out
}

// Slug returns the derived slug, or "" when WithSlug was never applied.
func (s *Scheme) Slug() string {
	return s.slug
}

// Color returns the colour stored at idx.
func (s *Scheme) Color(idx color.Index) (color.RGB, bool) {
	c, ok := s.Colors[idx]
	return c, ok
}

// Indices returns the populated palette slots in ascending order.
func (s *Scheme) Indices() []color.Index {
	return slices.Sorted(maps.Keys(s.Colors))
}

// Len returns the number of colours in the palette.
func (s *Scheme) Len() int {
	return len(s.Colors)
}

// CapacityHint estimates the rendered size of every field once: metadata
// text plus six characters per colour.
func (s *Scheme) CapacityHint() int {
	return len(s.Name) + len(s.Author) + len(s.slug) + len(s.Colors)*6
}

package scheme

import (
	"github.com/goliatone/go-base16/pkg/field"
)

// SlugPlaceholder is rendered for scheme-slug when the scheme was never given
// a slug. Kept for compatibility with templates rendered by older tooling.
const SlugPlaceholder = "scheme-slug"

// Lookup binds a colour field to the palette. It reports false when the
// index is not defined in the scheme.
func (s *Scheme) Lookup(f field.ColorField) (field.Value, bool) {
	c, ok := s.Colors[f.Index]
	if !ok {
		return field.Value{}, false
	}
	return f.Bind(c), true
}

// Resolve renders a parsed field. Unparsable fields and colours missing from
// the palette report false.
func (s *Scheme) Resolve(f field.TemplateField) (string, bool) {
	switch f.Kind {
	case field.SchemeName:
		return s.Name, true
	case field.SchemeAuthor:
		return s.Author, true
	case field.SchemeSlug:
		if s.slug == "" {
			return SlugPlaceholder, true
		}
		return s.slug, true
	case field.Color:
		v, ok := s.Lookup(f.Color)
		if !ok {
			return "", false
		}
		return v.String(), true
	default:
		return "", false
	}
}

// RenderField is the text hook template engines call for each placeholder.
func (s *Scheme) RenderField(name string) (string, bool) {
	return s.Resolve(field.Parse(name))
}

// FieldTruthy is the section hook: a placeholder opens a section when it
// resolves to non-empty text.
func (s *Scheme) FieldTruthy(name string) bool {
	text, ok := s.RenderField(name)
	return ok && text != ""
}

package field

import (
	"github.com/goliatone/go-base16/pkg/color"
)

// Literal field names for scheme metadata.
const (
	NameScheme       = "scheme"
	NameSchemeName   = "scheme-name"
	NameSchemeAuthor = "scheme-author"
	NameSchemeSlug   = "scheme-slug"
)

// FieldKind tags a TemplateField.
type FieldKind uint8

const (
	Unparsable FieldKind = iota
	SchemeName
	SchemeAuthor
	SchemeSlug
	Color
)

func (k FieldKind) String() string {
	switch k {
	case SchemeName:
		return "scheme-name"
	case SchemeAuthor:
		return "scheme-author"
	case SchemeSlug:
		return "scheme-slug"
	case Color:
		return "color"
	default:
		return "unparsable"
	}
}

// ColorField names a palette slot and the format to render it in.
type ColorField struct {
	Index  color.Index
	Format Format
}

// String returns the canonical specifier, e.g. "base0A-hex-r".
func (f ColorField) String() string {
	return f.Index.String() + "-" + f.Format.String()
}

// Bind pairs c with the field's Format, ready for rendering.
func (f ColorField) Bind(c color.RGB) Value {
	return Value{Color: c, Format: f.Format}
}

// TemplateField is the parsed form of a template placeholder name. Color is
// only meaningful when Kind is Color. The zero value is Unparsable.
type TemplateField struct {
	Kind  FieldKind
	Color ColorField
}

// Parse classifies a placeholder name. It never fails: names that match
// neither a metadata literal nor the colour grammar yield Unparsable.
func Parse(name string) TemplateField {
	switch name {
	case NameSchemeName, NameScheme:
		return TemplateField{Kind: SchemeName}
	case NameSchemeAuthor:
		return TemplateField{Kind: SchemeAuthor}
	case NameSchemeSlug:
		return TemplateField{Kind: SchemeSlug}
	}
	cf, err := ParseColorField(name)
	if err != nil {
		return TemplateField{Kind: Unparsable}
	}
	return TemplateField{Kind: Color, Color: cf}
}

// Parsed reports whether the field is anything other than Unparsable.
func (f TemplateField) Parsed() bool {
	return f.Kind != Unparsable
}

// String returns the canonical name for the field, "" when Unparsable.
func (f TemplateField) String() string {
	switch f.Kind {
	case SchemeName:
		return NameSchemeName
	case SchemeAuthor:
		return NameSchemeAuthor
	case SchemeSlug:
		return NameSchemeSlug
	case Color:
		return f.Color.String()
	default:
		return ""
	}
}

// Value pairs a resolved colour with its format.
type Value struct {
	Color  color.RGB
	Format Format
}

// String renders the value; unsupported formats render "".
func (v Value) String() string {
	return v.Format.Render(v.Color)
}

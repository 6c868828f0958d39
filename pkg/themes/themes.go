// Package themes exports schemes as go-theme manifests so applications that
// resolve design tokens through go-theme can consume base16 palettes.
package themes

import (
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-base16/pkg/field"
	"github.com/goliatone/go-base16/pkg/scheme"
)

// Token names for scheme metadata. Colour tokens use the palette key
// (base00 .. baseFF) and carry a "#rrggbb" value.
const (
	TokenName   = field.NameSchemeName
	TokenAuthor = field.NameSchemeAuthor
)

// ManifestRegistrar is the subset of a go-theme registry Register needs.
type ManifestRegistrar interface {
	Register(manifest *theme.Manifest) error
}

// Tokens returns the design tokens for s.
func Tokens(s *scheme.Scheme) map[string]string {
	tokens := make(map[string]string, s.Len()+2)
	tokens[TokenName] = s.Name
	tokens[TokenAuthor] = s.Author
	for _, idx := range s.Indices() {
		tokens[idx.String()] = "#" + s.Colors[idx].String()
	}
	return tokens
}

// Manifest builds a go-theme manifest named after the scheme slug.
func Manifest(s *scheme.Scheme, version string) (*theme.Manifest, error) {
	if s == nil {
		return nil, errors.New("themes: scheme is required")
	}
	if s.Slug() == "" {
		s = s.WithSlug()
	}
	if s.Slug() == "" {
		return nil, fmt.Errorf("themes: scheme %q has no slug", s.Name)
	}
	return &theme.Manifest{
		Name:    s.Slug(),
		Version: version,
		Tokens:  Tokens(s),
	}, nil
}

// Register converts every scheme and registers the manifests in order,
// stopping at the first failure.
func Register(registrar ManifestRegistrar, version string, schemes ...*scheme.Scheme) error {
	if registrar == nil {
		return errors.New("themes: registrar is required")
	}
	for _, s := range schemes {
		manifest, err := Manifest(s, version)
		if err != nil {
			return err
		}
		if err := registrar.Register(manifest); err != nil {
			return fmt.Errorf("themes: register %q: %w", manifest.Name, err)
		}
	}
	return nil
}

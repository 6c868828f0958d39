// Package base16 renders base16 colour-scheme templates. It loads scheme
// documents, parses template placeholders such as base0A-hsl-h and hands the
// formatted values to a template engine.
package base16

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/goliatone/go-base16/pkg/render"
	"github.com/goliatone/go-base16/pkg/render/template"
	"github.com/goliatone/go-base16/pkg/render/template/gotemplate"
	"github.com/goliatone/go-base16/pkg/render/template/mustache"
	"github.com/goliatone/go-base16/pkg/scheme"
)

// Scheme aliases scheme.Scheme for callers that only import the root package.
type Scheme = scheme.Scheme

// Store aliases scheme.Store.
type Store = scheme.Store

// FieldContent aliases the lookup contract engines render against.
type FieldContent = template.FieldContent

// Engine names registered by NewRegistry.
const (
	EngineMustache = mustache.EngineName
	EnginePongo2   = gotemplate.EngineName
)

// LoadScheme reads and slugs a single scheme document.
func LoadScheme(path string) (*Scheme, error) {
	return scheme.LoadFile(path)
}

// LoadSchemes walks fsys for scheme documents. A nil fsys loads the bundled
// schemes.
func LoadSchemes(fsys fs.FS, options ...scheme.LoadOption) (*Store, error) {
	if fsys == nil {
		fsys = EmbeddedSchemes()
	}
	return scheme.LoadFS(fsys, options...)
}

// NewRegistry builds a registry with the mustache and pongo2 engines, both
// loading named templates from templates. A nil templates uses
// EmbeddedTemplates.
func NewRegistry(templates fs.FS) (*render.Registry, error) {
	if templates == nil {
		templates = EmbeddedTemplates()
	}
	stache, err := mustache.New(mustache.WithFS(templates))
	if err != nil {
		return nil, fmt.Errorf("base16: mustache engine: %w", err)
	}
	pongo, err := gotemplate.New(gotemplate.WithFS(templates))
	if err != nil {
		return nil, fmt.Errorf("base16: pongo2 engine: %w", err)
	}
	return render.NewRegistry(stache, pongo)
}

var defaultRegistry = sync.OnceValues(func() (*render.Registry, error) {
	return NewRegistry(nil)
})

// DefaultRegistry returns the shared registry over the embedded templates.
func DefaultRegistry() (*render.Registry, error) {
	return defaultRegistry()
}

// Render renders templateContent with the named engine from the default
// registry.
func Render(ctx context.Context, engine, templateContent string, content FieldContent, out ...io.Writer) (string, error) {
	renderer, err := lookup(ctx, engine, content)
	if err != nil {
		return "", err
	}
	return renderer.RenderScheme(templateContent, content, out...)
}

// RenderTemplate renders a named template (see EmbeddedTemplates) with the
// named engine from the default registry.
func RenderTemplate(ctx context.Context, engine, name string, content FieldContent, out ...io.Writer) (string, error) {
	renderer, err := lookup(ctx, engine, content)
	if err != nil {
		return "", err
	}
	return renderer.RenderSchemeTemplate(name, content, out...)
}

func lookup(ctx context.Context, engine string, content FieldContent) (template.SchemeRenderer, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if content == nil {
		return nil, errors.New("base16: scheme is required")
	}
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}
	return registry.Get(engine)
}

// RenderField resolves a single placeholder name against s.
func RenderField(s *Scheme, name string) (string, bool) {
	if s == nil {
		return "", false
	}
	return s.RenderField(name)
}

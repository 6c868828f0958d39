// Package mustache renders base16 mustache templates against scheme content.
//
// Placeholders such as {{base00-hex}} go through the text hook and sections
// such as {{#base0A-hex}}...{{/base0A-hex}} through the section hook. Names
// that do not resolve render blank and close their sections.
package mustache

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"fortio.org/log"
	"github.com/cbroglie/mustache"

	"github.com/goliatone/go-base16/pkg/render/template"
)

// EngineName is the registry name of the mustache engine.
const EngineName = "mustache"

// maxPartialDepth bounds partial expansion while collecting tag names.
const maxPartialDepth = 16

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	templates fs.FS
	extension string
}

// WithFS loads named templates and partials from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default ".mustache" extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// Engine implements template.SchemeRenderer on cbroglie/mustache.
type Engine struct {
	mu sync.RWMutex

	files     fs.FS
	ext       string
	partials  mustache.PartialProvider
	templates map[string]*mustache.Template
}

var _ template.SchemeRenderer = (*Engine)(nil)

// New constructs an Engine.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".mustache"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	engine := &Engine{
		files:     cfg.templates,
		ext:       cfg.extension,
		templates: make(map[string]*mustache.Template),
	}
	if cfg.templates != nil {
		engine.partials = &fsPartials{files: cfg.templates, ext: cfg.extension}
	} else {
		engine.partials = &mustache.StaticProvider{}
	}
	return engine, nil
}

// Name implements template.SchemeRenderer.
func (e *Engine) Name() string {
	return EngineName
}

// RenderScheme parses templateContent and renders it against content.
func (e *Engine) RenderScheme(templateContent string, content template.FieldContent, out ...io.Writer) (string, error) {
	if e == nil {
		return "", errors.New("mustache: engine is nil")
	}
	if content == nil {
		return "", errors.New("mustache: scheme content is required")
	}
	tmpl, err := mustache.ParseStringPartials(templateContent, e.partials)
	if err != nil {
		return "", fmt.Errorf("mustache: parse template string: %w", err)
	}
	return e.execute(tmpl, "template string", content, out)
}

// RenderSchemeTemplate loads the named template (extension optional) from the
// configured fs.FS and renders it against content.
func (e *Engine) RenderSchemeTemplate(name string, content template.FieldContent, out ...io.Writer) (string, error) {
	if e == nil {
		return "", errors.New("mustache: engine is nil")
	}
	if content == nil {
		return "", errors.New("mustache: scheme content is required")
	}
	if e.files == nil {
		return "", fmt.Errorf("mustache: cannot load %q without WithFS", name)
	}

	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}
	tmpl, err := e.getTemplate(path)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, fmt.Sprintf("template %q", path), content, out)
}

func (e *Engine) execute(tmpl *mustache.Template, label string, content template.FieldContent, out []io.Writer) (string, error) {
	data := make(map[string]any)
	e.collect(tmpl.Tags(), content, data, 0)

	var buf bytes.Buffer
	buf.Grow(template.CapacityHint(content))
	if err := tmpl.FRender(&buf, data); err != nil {
		return "", fmt.Errorf("mustache: execute %s: %w", label, err)
	}

	rendered := buf.String()
	if err := template.WriteAll(rendered, out...); err != nil {
		return "", err
	}
	return rendered, nil
}

// collect resolves every tag name the template uses. mustache looks values
// up in a map, so the lookup hooks run once per distinct name up front.
// Closed sections leave no entry; a missing key is falsy and renders blank.
// Resolved text replaces an open gate so {{name}} never prints a bool.
func (e *Engine) collect(tags []mustache.Tag, content template.FieldContent, data map[string]any, depth int) {
	gated := make(map[string]bool)
	e.collectTags(tags, content, data, gated, depth)
}

func (e *Engine) collectTags(tags []mustache.Tag, content template.FieldContent, data map[string]any, gated map[string]bool, depth int) {
	for _, tag := range tags {
		name := tag.Name()
		switch tag.Type() {
		case mustache.Variable:
			if _, isText := data[name].(string); isText {
				continue
			}
			if text, ok := content.RenderField(name); ok {
				data[name] = text
			}
		case mustache.Section, mustache.InvertedSection:
			if !gated[name] {
				gated[name] = true
				if _, isText := data[name].(string); !isText && content.FieldTruthy(name) {
					data[name] = true
				}
			}
			e.collectTags(tag.Tags(), content, data, gated, depth)
		case mustache.Partial:
			if depth >= maxPartialDepth {
				log.Warnf("mustache: partial %q nested deeper than %d, not expanded", name, maxPartialDepth)
				continue
			}
			e.collectTags(e.partialTags(name), content, data, gated, depth+1)
		}
	}
}

func (e *Engine) partialTags(name string) []mustache.Tag {
	src, err := e.partials.Get(name)
	if err != nil || src == "" {
		return nil
	}
	tmpl, err := mustache.ParseStringPartials(src, e.partials)
	if err != nil {
		return nil
	}
	return tmpl.Tags()
}

func (e *Engine) getTemplate(path string) (*mustache.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}

	log.Debugf("mustache: cache miss, loading %s", path)
	src, err := fs.ReadFile(e.files, path)
	if err != nil {
		return nil, fmt.Errorf("mustache: load template %q: %w", path, err)
	}
	tmpl, err := mustache.ParseStringPartials(string(src), e.partials)
	if err != nil {
		return nil, fmt.Errorf("mustache: parse template %q: %w", path, err)
	}

	e.templates[path] = tmpl
	return tmpl, nil
}

// fsPartials resolves {{> name}} against an fs.FS. Missing partials render
// empty, matching mustache.FileProvider.
type fsPartials struct {
	files fs.FS
	ext   string
}

func (p *fsPartials) Get(name string) (string, error) {
	path := name
	if !strings.HasSuffix(path, p.ext) {
		path += p.ext
	}
	data, err := fs.ReadFile(p.files, path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("mustache: read partial %q: %w", name, err)
	}
	return string(data), nil
}

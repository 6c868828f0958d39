package scheme

import (
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fortio.org/log"
)

// LoadOptions configures LoadFS and LoadFile.
type LoadOptions struct {
	// Extensions lists the file extensions treated as scheme documents.
	Extensions []string
	// SkipInvalid logs and skips documents that fail to decode instead of
	// aborting the whole load.
	SkipInvalid bool
}

// LoadOption mutates LoadOptions.
type LoadOption func(*LoadOptions)

// WithExtensions overrides the default .yaml/.yml/.json extensions.
func WithExtensions(exts ...string) LoadOption {
	return func(opts *LoadOptions) {
		opts.Extensions = opts.Extensions[:0]
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			opts.Extensions = append(opts.Extensions, ext)
		}
	}
}

// WithSkipInvalid makes LoadFS skip malformed documents.
func WithSkipInvalid() LoadOption {
	return func(opts *LoadOptions) {
		opts.SkipInvalid = true
	}
}

func newLoadOptions(options ...LoadOption) LoadOptions {
	cfg := LoadOptions{Extensions: []string{".yaml", ".yml", ".json"}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Store holds slugged schemes keyed by slug.
type Store struct {
	schemes map[string]*Scheme
}

// NewStore returns a store holding the given schemes. Schemes without a slug
// are slugged on insertion.
func NewStore(schemes ...*Scheme) (*Store, error) {
	store := &Store{schemes: make(map[string]*Scheme, len(schemes))}
	for _, s := range schemes {
		if err := store.add(s, "memory"); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func (st *Store) add(s *Scheme, source string) error {
	if s == nil {
		return fmt.Errorf("scheme: %s: nil scheme", source)
	}
	if s.Slug() == "" {
		s = s.WithSlug()
	}
	slug := s.Slug()
	if slug == "" {
		return fmt.Errorf("scheme: %s: scheme name is empty, cannot derive a slug", source)
	}
	if _, exists := st.schemes[slug]; exists {
		return fmt.Errorf("scheme: duplicate scheme slug %q (file %s)", slug, source)
	}
	st.schemes[slug] = s
	return nil
}

// LoadFile reads, decodes and slugs a single scheme document from disk.
func LoadFile(path string) (*Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scheme: read %s: %w", path, err)
	}
	s, err := Decode(data, path)
	if err != nil {
		return nil, err
	}
	s = s.WithSlug()
	log.LogVf("scheme: loaded %s (%s, %d colors)", path, s.Slug(), s.Len())
	return s, nil
}

// LoadFS walks fsys and decodes every scheme document it finds. A nil fsys
// yields an empty store.
func LoadFS(fsys fs.FS, options ...LoadOption) (*Store, error) {
	cfg := newLoadOptions(options...)
	store := &Store{schemes: make(map[string]*Scheme)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !cfg.isSchemeFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("scheme: read %s: %w", path, err)
		}

		s, err := Decode(data, path)
		if err != nil {
			if cfg.SkipInvalid {
				log.Warnf("scheme: skipping %s: %v", path, err)
				return nil
			}
			return err
		}
		if err := store.add(s, path); err != nil {
			return err
		}
		log.LogVf("scheme: loaded %s (%d colors)", path, s.Len())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func (cfg LoadOptions) isSchemeFile(path string) bool {
	return slices.Contains(cfg.Extensions, strings.ToLower(filepath.Ext(path)))
}

// Get returns the scheme registered under slug.
func (st *Store) Get(slug string) (*Scheme, bool) {
	if st == nil {
		return nil, false
	}
	s, ok := st.schemes[slug]
	return s, ok
}

// Slugs returns every slug in sorted order.
func (st *Store) Slugs() []string {
	if st == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(st.schemes))
}

// Len reports how many schemes the store holds.
func (st *Store) Len() int {
	if st == nil {
		return 0
	}
	return len(st.schemes)
}

// Empty reports whether the store holds any schemes.
func (st *Store) Empty() bool {
	return st.Len() == 0
}

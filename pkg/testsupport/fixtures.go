package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-base16/pkg/color"
	"github.com/goliatone/go-base16/pkg/scheme"
)

// OceanYAML is the canonical fixture document used across package tests.
const OceanYAML = `scheme: "Ocean Deep"
author: "Jane Doe"
base00: "7cafc2"
base05: "d8d8d8"
base07: "f8f8f8"
base0A: "ebcb8b"
`

// Ocean returns the slugged in-memory form of OceanYAML.
func Ocean() *scheme.Scheme {
	return scheme.New("Ocean Deep", "Jane Doe", map[color.Index]color.RGB{
		0x00: color.MustParseHex("7cafc2"),
		0x05: color.MustParseHex("d8d8d8"),
		0x07: color.MustParseHex("f8f8f8"),
		0x0A: color.MustParseHex("ebcb8b"),
	}).WithSlug()
}

// MustLoadScheme reads a scheme fixture from disk, failing the test on error.
func MustLoadScheme(t *testing.T, path string) *scheme.Scheme {
	t.Helper()

	s, err := LoadSchemeFromPath(path)
	if err != nil {
		t.Fatalf("load scheme: %v", err)
	}
	return s
}

// LoadSchemeFromPath returns a slugged scheme without requiring testing.T so
// fixtures can be wired in setup functions.
func LoadSchemeFromPath(path string) (*scheme.Scheme, error) {
	if path == "" {
		return nil, errors.New("testsupport: scheme path is required")
	}
	s, err := scheme.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: load scheme: %w", err)
	}
	return s, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got against the golden file at path, rewriting the
// file instead when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(want, got); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

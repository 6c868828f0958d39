package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-base16/pkg/scheme"
	"github.com/goliatone/go-base16/pkg/testsupport"
)

func TestEngineFor(t *testing.T) {
	tests := map[string]string{
		"kitty.mustache": "mustache",
		"css-variables":  "mustache",
		"site.TPL":       "pongo2",
		"dir/theme.j2":   "pongo2",
		"config.pongo2":  "pongo2",
		"plain.txt":      "mustache",
	}
	for path, want := range tests {
		if got := engineFor(path); got != want {
			t.Errorf("engineFor(%q): want %q, got %q", path, want, got)
		}
	}
}

func TestChooseScheme(t *testing.T) {
	single, err := scheme.NewStore(testsupport.Ocean())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	s, err := chooseScheme(single, "", false)
	if err != nil || s.Slug() != "ocean-deep" {
		t.Fatalf("single store should auto-pick, got %v (%v)", s, err)
	}

	bundled, err := loadStore("", "")
	if err != nil {
		t.Fatalf("bundled store: %v", err)
	}
	if _, err := chooseScheme(bundled, "", false); err == nil || !strings.Contains(err.Error(), "default-dark") {
		t.Fatalf("expected ambiguity error listing slugs, got %v", err)
	}
	if _, err := chooseScheme(bundled, "nope", false); err == nil {
		t.Fatalf("expected unknown slug error")
	}
	if s, err := chooseScheme(bundled, "default-light", false); err != nil || s.Name != "Default Light" {
		t.Fatalf("unexpected pick %v (%v)", s, err)
	}

	empty, _ := scheme.NewStore()
	if _, err := chooseScheme(empty, "", false); err == nil {
		t.Fatalf("expected error for empty store")
	}
}

func TestLoadStore_FileAndDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ocean.yaml")
	if err := os.WriteFile(path, []byte(testsupport.OceanYAML), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("scheme: x\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fromFile, err := loadStore(path, "")
	if err != nil || fromFile.Len() != 1 {
		t.Fatalf("load file store: %v", err)
	}
	fromDir, err := loadStore("", dir)
	if err != nil {
		t.Fatalf("load dir store: %v", err)
	}
	if got := fromDir.Slugs(); len(got) != 1 || got[0] != "ocean-deep" {
		t.Fatalf("broken documents should be skipped, got %v", got)
	}
}

func TestRenderTemplate(t *testing.T) {
	ocean := testsupport.Ocean()

	dir := t.TempDir()
	path := filepath.Join(dir, "line.tpl")
	if err := os.WriteFile(path, []byte(`{{ field("base0A-hex-bgr") }}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	var buf bytes.Buffer
	if err := renderTemplate(&buf, ocean, path, ""); err != nil {
		t.Fatalf("render file: %v", err)
	}
	if buf.String() != "8bcbeb" {
		t.Fatalf("unexpected render %q", buf.String())
	}

	buf.Reset()
	if err := renderTemplate(&buf, ocean, "css-variables", ""); err != nil {
		t.Fatalf("render bundled: %v", err)
	}
	if !strings.Contains(buf.String(), "--base0A: #ebcb8b;") {
		t.Fatalf("unexpected bundled render:\n%s", buf.String())
	}

	if err := renderTemplate(&buf, ocean, "does-not-exist", ""); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestWriteThemeAndYAML(t *testing.T) {
	ocean := testsupport.Ocean()

	var buf bytes.Buffer
	if err := writeTheme(&buf, ocean, "2.0.0"); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("theme output is not JSON: %v\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "#ebcb8b") || !strings.Contains(buf.String(), "ocean-deep") {
		t.Fatalf("unexpected theme output:\n%s", buf.String())
	}

	buf.Reset()
	if err := writeYAML(&buf, ocean); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	back, err := scheme.Decode(buf.Bytes(), "dump.yaml")
	if err != nil {
		t.Fatalf("dump does not decode: %v", err)
	}
	if back.Name != ocean.Name || back.Len() != ocean.Len() {
		t.Fatalf("dump lost data: %+v", back)
	}
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	failed := errors.New("field not found")
	err := writeOutput(path, io.Discard, func(out io.Writer) error {
		_, _ = fmt.Fprint(out, "partial")
		return failed
	})
	if !errors.Is(err, failed) {
		t.Fatalf("expected produce error, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("failed render must not create %s (stat: %v)", path, err)
	}

	if err := writeOutput(path, io.Discard, func(out io.Writer) error {
		_, err := fmt.Fprintln(out, "7cafc2")
		return err
	}); err != nil {
		t.Fatalf("write file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "7cafc2\n" {
		t.Fatalf("unexpected file content %q", data)
	}

	var stdout bytes.Buffer
	if err := writeOutput("", &stdout, func(out io.Writer) error {
		_, err := fmt.Fprint(out, "ok")
		return err
	}); err != nil || stdout.String() != "ok" {
		t.Fatalf("unexpected stdout %q (%v)", stdout.String(), err)
	}

	if err := writeOutput(filepath.Join(dir, "missing", "out.txt"), io.Discard, func(io.Writer) error { return nil }); err == nil {
		t.Fatalf("expected create error for missing directory")
	}
}

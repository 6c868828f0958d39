// base16 renders base16 templates against colour schemes.
//
//	base16 -schemes ./schemes -select -template ./templates/kitty.mustache -o kitty.conf
//	base16 -scheme ocean.yaml -field base0A-hsl-h
//	base16 -slug default-dark -template css-variables
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/cli"
	"fortio.org/log"

	base16 "github.com/goliatone/go-base16"
	"github.com/goliatone/go-base16/pkg/scheme"
	"github.com/goliatone/go-base16/pkg/themes"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	schemeFile := flag.String("scheme", "", "scheme document `file` to render")
	schemesDir := flag.String("schemes", "", "`directory` of scheme documents (bundled schemes when empty)")
	slug := flag.String("slug", "", "scheme `slug` to pick from -schemes")
	pick := flag.Bool("select", false, "pick the scheme interactively")
	list := flag.Bool("list", false, "list available scheme slugs and exit")
	tmpl := flag.String("template", "", "template `file`, or the name of a bundled template")
	engine := flag.String("engine", "", "template engine: mustache or pongo2 (default from the template extension)")
	fieldName := flag.String("field", "", "render a single field `name` such as base0A-hex")
	asTheme := flag.Bool("theme", false, "print the scheme as a go-theme manifest (JSON)")
	themeVersion := flag.String("theme-version", "1.0.0", "manifest `version` used with -theme")
	dump := flag.Bool("dump", false, "print the scheme as canonical YAML")
	output := flag.String("o", "", "output `file` (stdout if empty)")
	cli.ArgsHelp = "\nRenders base16 templates. Pick a scheme with -scheme, or -schemes with -slug or -select.\n"
	cli.Main()

	store, err := loadStore(*schemeFile, *schemesDir)
	if err != nil {
		return log.FErrf("Error loading schemes: %v", err)
	}
	if *list {
		for _, s := range store.Slugs() {
			fmt.Println(s)
		}
		return 0
	}

	s, err := chooseScheme(store, *slug, *pick)
	if err != nil {
		return log.FErrf("Error choosing scheme: %v", err)
	}
	log.LogVf("Using scheme %q (%s, %d colors)", s.Name, s.Slug(), s.Len())

	if *fieldName == "" && !*asTheme && !*dump && *tmpl == "" {
		return log.FErrf("Nothing to do: pass -template, -field, -theme or -dump")
	}
	err = writeOutput(*output, os.Stdout, func(out io.Writer) error {
		switch {
		case *fieldName != "":
			value, ok := base16.RenderField(s, *fieldName)
			if !ok {
				return fmt.Errorf("field %q not found in scheme %s", *fieldName, s.Slug())
			}
			_, err := fmt.Fprintln(out, value)
			return err
		case *asTheme:
			return writeTheme(out, s, *themeVersion)
		case *dump:
			return writeYAML(out, s)
		default:
			return renderTemplate(out, s, *tmpl, *engine)
		}
	})
	if err != nil {
		return log.FErrf("Error: %v", err)
	}
	if *output != "" {
		log.Infof("Wrote %s", *output)
	}
	return 0
}

// writeOutput runs produce into memory and only then writes the result to
// path, or to stdout when path is empty. A failed produce leaves no file.
func writeOutput(path string, stdout io.Writer, produce func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := produce(&buf); err != nil {
		return err
	}
	if path == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := buf.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func loadStore(file, dir string) (*scheme.Store, error) {
	if file != "" {
		s, err := base16.LoadScheme(file)
		if err != nil {
			return nil, err
		}
		return scheme.NewStore(s)
	}
	if dir != "" {
		return base16.LoadSchemes(os.DirFS(dir), scheme.WithSkipInvalid())
	}
	return base16.LoadSchemes(nil)
}

func chooseScheme(store *scheme.Store, slug string, interactive bool) (*scheme.Scheme, error) {
	if store.Empty() {
		return nil, errors.New("no schemes found")
	}
	switch {
	case slug != "":
	case interactive:
		picked, err := promptScheme(store)
		if err != nil {
			return nil, err
		}
		slug = picked
	case store.Len() == 1:
		slug = store.Slugs()[0]
	default:
		return nil, fmt.Errorf("%d schemes available, pass -slug or -select (have %s)",
			store.Len(), strings.Join(store.Slugs(), ", "))
	}
	s, ok := store.Get(slug)
	if !ok {
		return nil, fmt.Errorf("unknown scheme %q", slug)
	}
	return s, nil
}

func renderTemplate(out io.Writer, s *scheme.Scheme, tmpl, engine string) error {
	if engine == "" {
		engine = engineFor(tmpl)
	}
	ctx := context.Background()

	data, err := os.ReadFile(tmpl)
	switch {
	case err == nil:
		_, err = base16.Render(ctx, engine, string(data), s, out)
		return err
	case errors.Is(err, fs.ErrNotExist):
		log.LogVf("%s is not a file, trying bundled templates", tmpl)
		_, err = base16.RenderTemplate(ctx, engine, tmpl, s, out)
		return err
	default:
		return err
	}
}

func engineFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tpl", ".pongo2", ".j2":
		return base16.EnginePongo2
	default:
		return base16.EngineMustache
	}
}

func writeTheme(out io.Writer, s *scheme.Scheme, version string) error {
	manifest, err := themes.Manifest(s, version)
	if err != nil {
		return err
	}
	buf, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", buf)
	return err
}

func writeYAML(out io.Writer, s *scheme.Scheme) error {
	buf, err := scheme.Encode(s)
	if err != nil {
		return err
	}
	_, err = out.Write(buf)
	return err
}

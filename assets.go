package base16

import (
	"embed"
	"io/fs"
)

//go:embed assets/templates/* assets/schemes/*.yaml
var embeddedAssets embed.FS

// EmbeddedTemplates exposes the built-in templates (".mustache" for the
// mustache engine, ".tpl" for pongo2).
//
// Typical use:
//
//	out, err := base16.RenderTemplate(ctx, "mustache", "css-variables", s)
func EmbeddedTemplates() fs.FS {
	return subFS("assets/templates")
}

// EmbeddedSchemes exposes the bundled scheme documents.
func EmbeddedSchemes() fs.FS {
	return subFS("assets/schemes")
}

func subFS(dir string) fs.FS {
	sub, err := fs.Sub(embeddedAssets, dir)
	if err != nil {
		return embeddedAssets
	}
	return sub
}

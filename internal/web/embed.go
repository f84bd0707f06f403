package web

import (
	"embed"
	"io/fs"
	"path"
)

// The page templates and static assets ship inside the binary so a single
// file deploys the whole site. Dev mode bypasses both and reads from disk.
var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templateEmbedFS roots the embedded filesystem at the templates directory
// so view names stay short ("home", "admin/skills").
type templateEmbedFS struct {
	content embed.FS
}

func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join("templates", name))
}

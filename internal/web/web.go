// Package web embeds the panel page and its assets into the binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// IndexTemplate is the name of the panel page template.
const IndexTemplate = "index.html.tmpl"

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

// Static returns the embedded assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

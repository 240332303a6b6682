// Package web holds the browser front end served by the file-crypt server:
// the page template and its static assets.
package web

import "embed"

// FS contains templates/index.html.tmpl and everything under static/.
//
//go:embed templates static
var FS embed.FS

const (
	// IndexTemplate is the path of the page template inside FS.
	IndexTemplate = "templates/index.html.tmpl"
	// StaticDir is the directory of the static assets inside FS.
	StaticDir = "static"
)

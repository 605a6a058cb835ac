// Package web embeds the browser viewer served at "/".
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var assets embed.FS

var static, _ = fs.Sub(assets, "static")

// Index serves the single page viewer.
func Index(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(static, "index.html")
	if err != nil {
		http.Error(w, "viewer unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// Static serves the viewer's scripts and styles under /static/.
func Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(static)))
}

// Package web embeds the page template and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"fruitpie-jobboard/models"
)

//go:embed templates/*.html static/*
var assets embed.FS

// Templates parses the embedded templates. Template names are file names,
// e.g. "index.html".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"date":     formatDate,
		"optional": optional,
		"statusClass": func(job models.JobPost) string {
			if job.Status == "Closed" {
				return "status-closed"
			}
			return "status-open"
		},
	}).ParseFS(assets, "templates/*.html"))
}

// Static serves the embedded static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func formatDate(job models.JobPost) string {
	return job.PostedDate.Format("January 2, 2006")
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

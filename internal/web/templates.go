package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var tmplFS embed.FS

var (
	homeTmpl     = page("home.html")
	elementsTmpl = page("elements.html")
	keywordsTmpl = page("keywords.html")
)

func page(name string) *template.Template {
	return template.Must(template.New(name).ParseFS(tmplFS, "templates/layout.html", "templates/"+name))
}

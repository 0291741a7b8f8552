package templates

import (
	"embed"
	"html/template"
	"math"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"pct": func(p float64) int { return int(math.Round(p * 100)) },
}

// Load parses every page template.
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "*.html")
}

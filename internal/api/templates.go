package api

import (
	"fmt"
	"html/template"
	"path/filepath"
)

// pageTemplates lists the page files under the templates directory. Each
// defines "content" and renders through the "base" layout in base.html.
var pageTemplates = []string{
	"landing",
	"login",
	"register",
	"dashboard",
	"vitals",
	"risk",
	"insights",
	"alerts",
	"profile",
	"medication",
	"health_trends",
	"settings",
	"not_found",
}

func parsePageTemplates(templateDir string, funcMap template.FuncMap, pages []string) (map[string]*template.Template, error) {
	layout, err := template.New("base.html").Funcs(funcMap).ParseFiles(filepath.Join(templateDir, "base.html"))
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		pageTemplate, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", page, err)
		}
		if _, err := pageTemplate.ParseFiles(filepath.Join(templateDir, page+".html")); err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		if pageTemplate.Lookup("content") == nil {
			return nil, fmt.Errorf("page template %s does not define content", page)
		}
		parsed[page] = pageTemplate
	}
	return parsed, nil
}

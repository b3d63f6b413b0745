package render

import (
	"html/template"
	"io"
	"io/fs"

	"github.com/pkg/errors"
)

const pageTemplate = "index.html"

// PageData fills the host page.
type PageData struct {
	Title            string
	AppName          string
	StaticURL        string
	ForecastEndpoint string
	Year             int
}

// Page is the host document that contains the current and forecast regions.
type Page struct {
	tmpl *template.Template
}

func ParsePage(fsys fs.FS) (*Page, error) {
	tmpl, err := template.ParseFS(fsys, pageTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "parse page template")
	}
	return &Page{tmpl: tmpl}, nil
}

func (p *Page) Execute(w io.Writer, data PageData) error {
	return p.tmpl.ExecuteTemplate(w, pageTemplate, data)
}

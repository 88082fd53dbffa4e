package site

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/infratech/site/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

//go:embed static/**
var staticFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// StaticFS returns the assets compiled into the binary, rooted at the
// static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFs, "static")
	if err != nil {
		panic(errors.WithStack(err))
	}

	return sub
}

type PageTemplateData struct {
	ui.HeadTemplateData
	Header  ui.HeaderTemplateData
	Footer  ui.FooterTemplateData
	Content *Content
	Page    Page
}

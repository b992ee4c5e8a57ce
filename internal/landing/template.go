package landing

import (
	"embed"
	"html/template"

	"github.com/bornholm/navbar/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// LandingTemplateData contains the data needed to render the presets page
type LandingTemplateData struct {
	ui.HeadTemplateData
	Navbars []ui.NavbarTemplateData
}

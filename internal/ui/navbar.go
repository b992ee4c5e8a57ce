package ui

import (
	"html/template"

	"github.com/bornholm/navbar/pkg/navbar"
	"github.com/pkg/errors"
)

// NavbarTemplateData is a mounted navbar and the URL its toggle control
// posts to.
type NavbarTemplateData struct {
	Instance     *navbar.Instance
	ToggleAction string
}

func NewNavbarTemplateData(props navbar.Props, toggleAction string) NavbarTemplateData {
	return NavbarTemplateData{
		Instance:     navbar.NewInstance(props),
		ToggleAction: toggleAction,
	}
}

// RenderNavbar renders the whole navbar, its toggle control bound to
// ToggleAction.
func RenderNavbar(data NavbarTemplateData) (template.HTML, error) {
	if data.Instance == nil {
		return "", errors.New("missing navbar instance")
	}

	node := data.Instance.Render(
		navbar.WithToggleBinding(data.Instance.HTMXBinding(data.ToggleAction)),
	)

	html, err := navbar.HTML(node)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return html, nil
}

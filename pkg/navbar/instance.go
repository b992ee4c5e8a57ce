package navbar

import (
	"encoding/json"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"golang.org/x/net/html"
)

// Instance is one mounted navbar. It owns its dropdown state for its whole
// lifetime and is not safe for concurrent use.
type Instance struct {
	id    xid.ID
	props Props
	state State
}

func NewInstance(props Props) *Instance {
	props.Menus = slices.Clone(props.Menus)

	return &Instance{
		id:    xid.New(),
		props: props,
		state: Collapsed,
	}
}

// RestoreInstance recreates a mounted instance from its identifier and its
// last known state.
func RestoreInstance(id xid.ID, props Props, state State) *Instance {
	props.Menus = slices.Clone(props.Menus)

	return &Instance{
		id:    id,
		props: props,
		state: state,
	}
}

func (i *Instance) ID() xid.ID {
	return i.id
}

func (i *Instance) ElementID() string {
	return "navbar-" + i.id.String()
}

func (i *Instance) Props() Props {
	props := i.props
	props.Menus = slices.Clone(i.props.Menus)
	return props
}

func (i *Instance) State() State {
	return i.state
}

// Toggle inverts the dropdown visibility and returns the new state.
func (i *Instance) Toggle() State {
	i.state = i.state.Toggle()
	return i.state
}

// Render returns the full navbar tree. Its content element is identified by
// ElementID so it can be swapped on toggle.
func (i *Instance) Render(funcs ...RenderOptionFunc) *html.Node {
	return Render(i.props, i.state, i.renderOptions(funcs)...)
}

func (i *Instance) RenderContent(funcs ...RenderOptionFunc) *html.Node {
	return RenderContent(i.props, i.state, i.renderOptions(funcs)...)
}

func (i *Instance) renderOptions(funcs []RenderOptionFunc) []RenderOptionFunc {
	return append([]RenderOptionFunc{WithContentID(i.ElementID())}, funcs...)
}

// HTMXBinding posts the current state and the instance id to action and
// replaces the instance content with the response.
func (i *Instance) HTMXBinding(action string) ToggleBinding {
	return func(current State) []html.Attribute {
		vals, err := json.Marshal(map[string]string{
			"instance": i.id.String(),
			"state":    current.String(),
		})
		if err != nil {
			panic(errors.WithStack(err))
		}

		return attrs(
			"hx-post", action,
			"hx-vals", string(vals),
			"hx-target", "#"+i.ElementID(),
			"hx-swap", "outerHTML",
		)
	}
}

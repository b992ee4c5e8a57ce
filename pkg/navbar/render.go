package navbar

import (
	"bytes"
	"html/template"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// KeyAttr holds the menu entry id on each rendered list item.
const KeyAttr = "data-key"

// ToggleBinding returns the attributes wiring the menu toggle control to
// whatever inverts the current state.
type ToggleBinding func(current State) []html.Attribute

type RenderOptions struct {
	ToggleBinding ToggleBinding
	ContentID     string
}

type RenderOptionFunc func(opts *RenderOptions)

func NewRenderOptions(funcs ...RenderOptionFunc) *RenderOptions {
	opts := &RenderOptions{}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithToggleBinding(binding ToggleBinding) RenderOptionFunc {
	return func(opts *RenderOptions) {
		opts.ToggleBinding = binding
	}
}

func WithContentID(id string) RenderOptionFunc {
	return func(opts *RenderOptions) {
		opts.ContentID = id
	}
}

// Render returns the whole navbar element tree for the given state.
func Render(props Props, state State, funcs ...RenderOptionFunc) *html.Node {
	return element(atom.Section, attrs("id", "navbar", "class", props.NavbarClass),
		element(atom.Div, attrs("class", "container mx-auto px-4 py-2"),
			RenderContent(props, state, funcs...),
		),
	)
}

// RenderContent returns the part of the navbar that changes with the state.
func RenderContent(props Props, state State, funcs ...RenderOptionFunc) *html.Node {
	opts := NewRenderOptions(funcs...)

	contentAttrs := attrs("class", props.FlexContainerClass)
	if opts.ContentID != "" {
		contentAttrs = append(attrs("id", opts.ContentID), contentAttrs...)
	}

	return element(atom.Div, contentAttrs,
		renderLogo(props),
		renderMenu(props),
		renderMenuToggle(props, state, opts.ToggleBinding),
		renderDropdown(props, state),
	)
}

func renderLogo(props Props) *html.Node {
	return element(atom.Div, attrs("id", "logo", "class", props.LogoClass),
		element(atom.A, attrs("href", props.LogoLink, "class", "nav-link"),
			element(atom.Img, attrs("src", props.LogoSrc, "alt", props.LogoAlt, "class", props.LogoImageClass)),
		),
	)
}

func renderMenu(props Props) *html.Node {
	list := element(atom.Ul, attrs("class", "flex space-x-4 md:space-x-8"))
	for _, menu := range props.Menus {
		list.AppendChild(element(atom.Li, attrs(KeyAttr, strconv.Itoa(menu.ID)),
			element(atom.A, attrs("class", props.MenuItemClass, "href", menu.Link), text(menu.Name)),
		))
	}

	return element(atom.Div, attrs("class", props.NavClass),
		element(atom.Div, attrs("class", props.HiddenOnMediumClass),
			element(atom.Nav, attrs("id", "mainnav", "class", "mainnav", "data-menu-style", "horizontal"), list),
		),
		element(atom.Input, attrs("type", "text", "placeholder", "Search...", "class", props.SearchInputClass)),
		renderButton(props),
	)
}

func renderButton(props Props) *html.Node {
	return element(atom.Div, attrs("class", props.ButtonClass),
		element(atom.A, attrs("href", props.ButtonHref, "class", props.ButtonLinkClass, "target", "_blank"),
			element(atom.B, nil, text(props.ButtonText)),
		),
	)
}

func renderMenuToggle(props Props, state State, binding ToggleBinding) *html.Node {
	toggleAttrs := attrs("class", props.MenuToggleClass)
	if binding != nil {
		toggleAttrs = append(toggleAttrs, binding(state)...)
	}

	return element(atom.Div, toggleAttrs,
		element(atom.Div, attrs("class", props.ToggleLineClass+" w-6")),
		element(atom.Div, attrs("class", props.ToggleLineClass+" w-8")),
		element(atom.Div, attrs("class", props.ToggleLineClass+" w-6")),
	)
}

// renderDropdown returns nil when collapsed, the panel is not emitted at all.
func renderDropdown(props Props, state State) *html.Node {
	if !state.IsExpanded() {
		return nil
	}

	list := element(atom.Ul, nil)
	for _, menu := range props.Menus {
		list.AppendChild(element(atom.Li, attrs(KeyAttr, strconv.Itoa(menu.ID), "class", props.DropdownItemClass),
			element(atom.A, attrs("href", menu.Link), text(menu.Name)),
		))
	}

	return element(atom.Div, attrs("class", props.DropdownClass), list)
}

// Write serializes the given tree as HTML.
func Write(w io.Writer, node *html.Node) error {
	if err := html.Render(w, node); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func HTML(node *html.Node) (template.HTML, error) {
	var buff bytes.Buffer

	if err := Write(&buff, node); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buff.String()), nil
}

func element(tag atom.Atom, attributes []html.Attribute, children ...*html.Node) *html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
		Attr:     attributes,
	}

	for _, child := range children {
		if child == nil {
			continue
		}

		node.AppendChild(child)
	}

	return node
}

func text(data string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: data,
	}
}

// attrs builds attributes from key/value pairs.
func attrs(pairs ...string) []html.Attribute {
	attributes := make([]html.Attribute, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		attributes = append(attributes, html.Attribute{Key: pairs[i], Val: pairs[i+1]})
	}

	return attributes
}

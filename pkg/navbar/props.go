package navbar

import (
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const (
	DefaultNavbarClass         = "fixed top-0 left-0 w-full bg-black text-white font-roboto z-20"
	DefaultLogoClass           = "flex items-center"
	DefaultLogoImageClass      = "w-32 md:w-40"
	DefaultLogoSrc             = "images/logo.png"
	DefaultLogoAlt             = "logo"
	DefaultLogoLink            = "/"
	DefaultMenuToggleClass     = "btn-menu ml-4 md:hidden cursor-pointer"
	DefaultToggleLineClass     = "line h-1 mb-1 bg-white transition-transform transform origin-center"
	DefaultFlexContainerClass  = "flex justify-between items-center"
	DefaultHiddenOnMediumClass = "hidden md:flex nav-wrap"
	DefaultNavClass            = "flex flex-grow justify-end items-center space-x-4 md:space-x-8"
	DefaultMenuItemClass       = "nav-link text-white hover:text-gray-300 transition-colors"
	DefaultButtonLinkClass     = "rounded-full py-2 px-6 bg-blue-500 text-white text-lg transition-colors hover:bg-blue-600"
	DefaultDropdownClass       = "absolute top-full left-0 mt-2 bg-black text-white p-2 rounded shadow-lg block md:hidden"
	DefaultDropdownItemClass   = "border-b border-blue-500"
	DefaultSearchInputClass    = "hidden md:block rounded-full py-2 px-4 bg-gray-800 text-white text-lg placeholder-gray-500 focus:outline-none"
)

// Menu is an entry displayed both in the horizontal navigation and in the
// dropdown panel. ID is used as the item key and is expected to be unique
// within a Props value.
type Menu struct {
	ID   int    `mapstructure:"id"`
	Link string `mapstructure:"link"`
	Name string `mapstructure:"name"`
}

// Props holds the content and styling of a navbar. Class fields are emitted
// verbatim into class attributes.
type Props struct {
	Menus []Menu `mapstructure:"menus"`

	// Optional call to action, always rendered
	ButtonHref      string `mapstructure:"buttonHref"`
	ButtonText      string `mapstructure:"buttonText"`
	ButtonClass     string `mapstructure:"buttonClass"`
	ButtonLinkClass string `mapstructure:"buttonLinkClass"`

	NavbarClass         string `mapstructure:"navbarClass"`
	LogoClass           string `mapstructure:"logoClass"`
	MenuToggleClass     string `mapstructure:"menuToggleClass"`
	ToggleLineClass     string `mapstructure:"toggleLineClass"`
	FlexContainerClass  string `mapstructure:"flexContainerClass"`
	HiddenOnMediumClass string `mapstructure:"hiddenOnMediumClass"`
	NavClass            string `mapstructure:"navClass"`
	MenuItemClass       string `mapstructure:"menuItemClass"`
	DropdownClass       string `mapstructure:"dropdownClass"`
	DropdownItemClass   string `mapstructure:"dropdownItemClass"`
	SearchInputClass    string `mapstructure:"searchInputClass"`

	LogoSrc        string `mapstructure:"logoSrc"`
	LogoAlt        string `mapstructure:"logoAlt"`
	LogoImageClass string `mapstructure:"logoImageClass"`
	LogoLink       string `mapstructure:"logoLink"`
}

func DefaultProps() Props {
	return Props{
		Menus:               []Menu{},
		ButtonLinkClass:     DefaultButtonLinkClass,
		NavbarClass:         DefaultNavbarClass,
		LogoClass:           DefaultLogoClass,
		MenuToggleClass:     DefaultMenuToggleClass,
		ToggleLineClass:     DefaultToggleLineClass,
		FlexContainerClass:  DefaultFlexContainerClass,
		HiddenOnMediumClass: DefaultHiddenOnMediumClass,
		NavClass:            DefaultNavClass,
		MenuItemClass:       DefaultMenuItemClass,
		DropdownClass:       DefaultDropdownClass,
		DropdownItemClass:   DefaultDropdownItemClass,
		SearchInputClass:    DefaultSearchInputClass,
		LogoSrc:             DefaultLogoSrc,
		LogoAlt:             DefaultLogoAlt,
		LogoImageClass:      DefaultLogoImageClass,
		LogoLink:            DefaultLogoLink,
	}
}

// Merge returns a copy of the default props where every non empty field of
// overrides takes precedence.
func Merge(overrides Props) Props {
	props := DefaultProps()

	if overrides.Menus != nil {
		props.Menus = slices.Clone(overrides.Menus)
	}

	override(&props.ButtonHref, overrides.ButtonHref)
	override(&props.ButtonText, overrides.ButtonText)
	override(&props.ButtonClass, overrides.ButtonClass)
	override(&props.ButtonLinkClass, overrides.ButtonLinkClass)
	override(&props.NavbarClass, overrides.NavbarClass)
	override(&props.LogoClass, overrides.LogoClass)
	override(&props.MenuToggleClass, overrides.MenuToggleClass)
	override(&props.ToggleLineClass, overrides.ToggleLineClass)
	override(&props.FlexContainerClass, overrides.FlexContainerClass)
	override(&props.HiddenOnMediumClass, overrides.HiddenOnMediumClass)
	override(&props.NavClass, overrides.NavClass)
	override(&props.MenuItemClass, overrides.MenuItemClass)
	override(&props.DropdownClass, overrides.DropdownClass)
	override(&props.DropdownItemClass, overrides.DropdownItemClass)
	override(&props.SearchInputClass, overrides.SearchInputClass)
	override(&props.LogoSrc, overrides.LogoSrc)
	override(&props.LogoAlt, overrides.LogoAlt)
	override(&props.LogoImageClass, overrides.LogoImageClass)
	override(&props.LogoLink, overrides.LogoLink)

	return props
}

func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}

// PropsFromOptions decodes a loosely typed option map (usually coming from a
// YAML configuration file) and merges it over the default props. As with
// Merge, empty values resolve to their default.
func PropsFromOptions(options any) (Props, error) {
	if options == nil {
		return DefaultProps(), nil
	}

	var overrides Props

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &overrides,
	})
	if err != nil {
		return Props{}, errors.Wrap(err, "could not create navbar props decoder")
	}

	if err := decoder.Decode(options); err != nil {
		return Props{}, errors.Wrap(err, "could not parse navbar props")
	}

	return Merge(overrides), nil
}

type PropsOptionFunc func(props *Props)

// NewProps returns the default props updated by the given options.
func NewProps(funcs ...PropsOptionFunc) Props {
	props := DefaultProps()

	for _, fn := range funcs {
		fn(&props)
	}

	return props
}

func WithMenus(menus ...Menu) PropsOptionFunc {
	return func(props *Props) {
		props.Menus = slices.Clone(menus)
	}
}

func WithButton(href string, text string) PropsOptionFunc {
	return func(props *Props) {
		props.ButtonHref = href
		props.ButtonText = text
	}
}

func WithLogo(src string, alt string, link string) PropsOptionFunc {
	return func(props *Props) {
		props.LogoSrc = src
		props.LogoAlt = alt
		props.LogoLink = link
	}
}

// WithClasses applies the non empty class fields of overrides, leaving the
// current values in place otherwise.
func WithClasses(overrides Props) PropsOptionFunc {
	return func(props *Props) {
		override(&props.ButtonClass, overrides.ButtonClass)
		override(&props.ButtonLinkClass, overrides.ButtonLinkClass)
		override(&props.NavbarClass, overrides.NavbarClass)
		override(&props.LogoClass, overrides.LogoClass)
		override(&props.MenuToggleClass, overrides.MenuToggleClass)
		override(&props.ToggleLineClass, overrides.ToggleLineClass)
		override(&props.FlexContainerClass, overrides.FlexContainerClass)
		override(&props.HiddenOnMediumClass, overrides.HiddenOnMediumClass)
		override(&props.NavClass, overrides.NavClass)
		override(&props.MenuItemClass, overrides.MenuItemClass)
		override(&props.DropdownClass, overrides.DropdownClass)
		override(&props.DropdownItemClass, overrides.DropdownItemClass)
		override(&props.SearchInputClass, overrides.SearchInputClass)
		override(&props.LogoImageClass, overrides.LogoImageClass)
	}
}

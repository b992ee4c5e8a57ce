package config

import (
	"github.com/goccy/go-yaml"
)

// Preset is a named navbar configuration. Options are decoded on top of the
// navbar default props, so only overridden fields need to be listed.
type Preset struct {
	Name    InterpolatedString `yaml:"name"`
	Options *InterpolatedMap   `yaml:"options"`
}

func NewDefaultPresetsConfig() []Preset {
	return []Preset{
		{
			Name: "gradient",
			Options: &InterpolatedMap{Data: map[string]any{
				"navbarClass":         "top-0 left-0 w-full bg-gradient-to-r from-blue-500 to-purple-500 text-white font-roboto z-20",
				"logoClass":           "flex items-center transform hover:scale-110 transition-transform",
				"menuToggleClass":     "btn-menu ml-4 md:hidden cursor-pointer rotate-45 transition-transform",
				"toggleLineClass":     "line h-1 mb-1 bg-white transition-transform transform origin-center",
				"flexContainerClass":  "flex justify-between items-center p-4",
				"hiddenOnMediumClass": "hidden md:flex nav-wrap space-x-4",
				"navClass":            "flex flex-grow justify-end items-center space-x-4 md:space-x-8",
				"menuItemClass":       "nav-link text-white hover:text-gray-300 transition-colors",
				"buttonClass":         "bg-yellow-500 hover:bg-yellow-600 rounded-full py-2 px-6 text-white text-lg transition-colors",
				"buttonText":          "Hello",
				"logoImageClass":      "w-32 md:w-40",
				"dropdownItemClass":   "border-b border-yellow-500",
				"dropdownClass":       "absolute top-full left-0 mt-2 bg-black text-white p-2 rounded shadow-lg border border-blue-500 block md:hidden",
				"searchInputClass":    "hidden md:block rounded-full py-2 px-4 bg-gray-800 text-white text-lg placeholder-gray-500 focus:outline-none",
			}},
		},
		{
			Name: "vertical",
			Options: &InterpolatedMap{Data: map[string]any{
				"navbarClass":     "top-28 left-0 w-full bg-blue-500 text-white font-roboto z-20",
				"menuToggleClass": "btn-menu ml-4 md:hidden cursor-pointer",
				"buttonText":      "Hello",
				"logoImageClass":  "w-32 md:w-40",
				"navClass":        "flex flex-col md:flex-row justify-end items-center space-y-4 md:space-y-0 md:space-x-8",
			}},
		},
		{
			Name: "grid",
			Options: &InterpolatedMap{Data: map[string]any{
				"navbarClass":       "top-48 left-0 w-full bg-blue-500 text-white font-roboto z-20",
				"dropdownClass":     "absolute top-full left-0 mt-2 bg-black text-white p-4 rounded shadow-lg border border-blue-500 grid grid-cols-4 gap-4 block md:hidden",
				"dropdownItemClass": "border-b border-blue-500 col-span-1",
				"menus": []any{
					map[string]any{"id": 1, "link": "#", "name": "Home"},
					map[string]any{"id": 2, "link": "#about", "name": "About"},
					map[string]any{"id": 3, "link": "#services", "name": "Services"},
					map[string]any{"id": 4, "link": "#contact", "name": "Contact"},
				},
				"buttonText":     "Hello",
				"logoImageClass": "w-32 md:w-40",
			}},
		},
		{
			Name: "rainbow",
			Options: &InterpolatedMap{Data: map[string]any{
				"navbarClass":    "top-60 left-0 w-full bg-gradient-to-r from-pink-500 via-purple-500 to-indigo-500 text-white font-roboto z-20",
				"logoClass":      "flex items-center transform hover:rotate-180 transition-transform",
				"logoImageClass": "w-32 md:w-40 animate-bounce",
				"buttonText":     "Hello",
			}},
		},
		{
			Name: "terminal",
			Options: &InterpolatedMap{Data: map[string]any{
				"navbarClass":      "top-80 left-0 w-full bg-gray-900 text-yellow-300 font-mono z-20",
				"menuItemClass":    "nav-link text-yellow-300 hover:text-gray-300 transition-colors",
				"logoImageClass":   "w-32 md:w-40",
				"buttonText":       "Hello",
				"buttonLinkClass":  "rounded-full py-2 px-6 bg-purple-500 text-white text-lg transition-colors hover:bg-purple-600",
				"searchInputClass": "hidden md:block rounded-full py-2 px-4 bg-gray-800 text-white text-lg placeholder-gray-500 focus:outline-none",
			}},
		},
		{
			Name: "pulse",
			Options: &InterpolatedMap{Data: map[string]any{
				"navbarClass":     "top-100 left-0 w-full bg-gradient-to-b from-blue-500 to-purple-500 text-white font-roboto z-20 overflow-hidden",
				"logoClass":       "flex items-center",
				"logoImageClass":  "w-32 md:w-40 animate-pulse",
				"toggleLineClass": "line h-1 mb-1 bg-white transition-transform transform origin-center animate-bounce",
				"buttonText":      "Hello",
				"buttonLinkClass": "rounded-full py-2 px-6 bg-pink-500 text-white text-lg transition-colors hover:bg-pink-600 animate__animated animate__bounce",
			}},
		},
		{
			Name: "plain",
			Options: &InterpolatedMap{Data: map[string]any{
				"navbarClass":    "top-100 left-0 w-full",
				"logoImageClass": "w-32 md:w-40 transform hover:rotate-45 transition-transform duration-500",
				"buttonText":     "Hello",
			}},
		},
		{
			Name: "blurred",
			Options: &InterpolatedMap{Data: map[string]any{
				"navbarClass":     "top-120 left-0 w-full bg-black text-white font-roboto z-20",
				"logoClass":       "flex items-center transform translate-y-1/4 filter blur-sm",
				"logoImageClass":  "w-32 md:w-40",
				"buttonText":      "Hello",
				"navClass":        "flex flex-grow justify-end items-center space-x-4 md:space-x-8",
				"menuItemClass":   "nav-link text-white hover:text-gray-300 transition-colors transform translate-y-1/2 delay-75",
				"buttonLinkClass": "rounded-full py-2 px-6 bg-blue-500 text-white text-lg transition-colors hover:bg-blue-600 transform translate-y-1/2 delay-150",
			}},
		},
		{
			Name: "tilted",
			Options: &InterpolatedMap{Data: map[string]any{
				"navbarClass":     "top-140 left-0 w-full bg-black text-white font-roboto z-20",
				"logoImageClass":  "w-32 md:w-40 transform rotate-45",
				"toggleLineClass": "line h-1 mb-1 bg-white transition-all transform hover:translate-x-2 origin-center",
				"buttonText":      "Hello",
			}},
		},
		{
			Name: "sunset",
			Options: &InterpolatedMap{Data: map[string]any{
				"navbarClass":    "top-160 left-0 w-full bg-gradient-to-b from-blue-500 via-purple-500 to-pink-500 text-white font-roboto z-20",
				"logoImageClass": "w-32 md:w-40",
				"buttonText":     "Hello",
			}},
		},
	}
}

func NewPresetsConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"": []*yaml.Comment{yaml.HeadComment(
			" Navbar presets displayed on the landing page",
			" Omitted options fall back to the navbar defaults",
		)},
		"[0].name":    []*yaml.Comment{yaml.HeadComment(" Preset name, used in toggle URLs")},
		"[0].options": []*yaml.Comment{yaml.HeadComment(" Navbar options (navbarClass, menus, buttonText, ...)")},
	}
}

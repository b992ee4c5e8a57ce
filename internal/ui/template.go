package ui

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed templates/**
var commonFs embed.FS

var commonFuncs = template.FuncMap{
	"humanizeInt": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"navbar": RenderNavbar,
}

var templatePatterns = []string{"**/views/*.gohtml", "**/layouts/*.gohtml"}

// Templates parses the common layouts together with the views and layouts of
// the given filesystems.
func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	filesystems = append([]fs.FS{commonFs}, filesystems...)

	paths, err := templatePaths(filesystems)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	merged := mergefs.Merge(filesystems...)

	tmpl := template.New("").Funcs(sprig.FuncMap()).Funcs(commonFuncs)

	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}

	tmpl, err = tmpl.ParseFS(merged, paths...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

// templatePaths globs each filesystem on its own: the merged filesystem logs
// every directory missing from one of its layers.
func templatePaths(filesystems []fs.FS) ([]string, error) {
	paths := make([]string, 0)
	seen := make(map[string]struct{})

	for _, pattern := range templatePatterns {
		for _, fsys := range filesystems {
			matches, err := fs.Glob(fsys, pattern)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			for _, m := range matches {
				if _, exists := seen[m]; exists {
					continue
				}

				seen[m] = struct{}{}
				paths = append(paths, m)
			}
		}
	}

	return paths, nil
}

type HeadTemplateData struct {
	PageTitle string
}

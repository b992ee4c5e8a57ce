package setup

import (
	"context"

	"github.com/bornholm/navbar/internal/config"
	"github.com/bornholm/navbar/internal/landing"
	"github.com/bornholm/navbar/pkg/navbar"
	"github.com/pkg/errors"
)

func NewPresetsFromConfig(ctx context.Context, conf *config.Config) ([]landing.Preset, error) {
	presets := make([]landing.Preset, 0, len(conf.Presets))
	seen := make(map[string]struct{}, len(conf.Presets))

	for idx, p := range conf.Presets {
		name := string(p.Name)
		if name == "" {
			return nil, errors.Errorf("preset #%d has no name", idx)
		}

		if _, exists := seen[name]; exists {
			return nil, errors.Errorf("preset '%s' is declared more than once", name)
		}

		seen[name] = struct{}{}

		var options any
		if p.Options != nil {
			options = p.Options.Data
		}

		props, err := navbar.PropsFromOptions(options)
		if err != nil {
			return nil, errors.Wrapf(err, "could not load preset '%s'", name)
		}

		presets = append(presets, landing.Preset{
			Name:  name,
			Props: props,
		})
	}

	return presets, nil
}

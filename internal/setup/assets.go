package setup

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/bornholm/navbar/internal/assets"
	"github.com/bornholm/navbar/internal/config"
	"github.com/pkg/errors"

	_ "github.com/bornholm/navbar/internal/assets/all"
)

func NewAssetsFromConfig(ctx context.Context, conf *config.Config) (fs.FS, error) {
	var options any
	if conf.Assets.Options != nil {
		options = conf.Assets.Options.Data
	}

	source, err := assets.New(assets.Type(conf.Assets.Type), options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.InfoContext(ctx, "assets source configured", slog.String("type", string(conf.Assets.Type)))

	return source, nil
}

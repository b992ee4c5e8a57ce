package local

import (
	"io/fs"
	"os"

	"github.com/bornholm/navbar/internal/assets"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const (
	Type assets.Type = "local"
)

func init() {
	assets.Register(Type, CreateSourceFromOptions)
}

type Options struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

func CreateSourceFromOptions(options any) (fs.FS, error) {
	opts := Options{}

	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' assets source options", Type)
	}

	if opts.Dir == "" {
		return nil, errors.Errorf("'%s' assets source: missing 'dir' option", Type)
	}

	info, err := os.Stat(opts.Dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !info.IsDir() {
		return nil, errors.Errorf("'%s' assets source: '%s' is not a directory", Type, opts.Dir)
	}

	return os.DirFS(opts.Dir), nil
}

package s3

import (
	"io/fs"
	"log/slog"

	"github.com/bornholm/navbar/internal/assets"
	"github.com/bornholm/navbar/pkg/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const (
	Type assets.Type = "s3"
)

func init() {
	assets.Register(Type, CreateSourceFromOptions)
}

type Options struct {
	Endpoint        string `mapstructure:"endpoint" yaml:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey" yaml:"secretAccessKey"`
	Region          string `mapstructure:"region" yaml:"region"`
	Bucket          string `mapstructure:"bucket" yaml:"bucket"`
	Prefix          string `mapstructure:"prefix" yaml:"prefix"`
	Secure          bool   `mapstructure:"secure" yaml:"secure"`
}

func CreateSourceFromOptions(options any) (fs.FS, error) {
	opts := Options{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not create '%s' assets source options decoder", Type)
	}

	if err := decoder.Decode(options); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' assets source options", Type)
	}

	if opts.Bucket == "" {
		return nil, errors.Errorf("'%s' assets source: missing 'bucket' option", Type)
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: opts.Secure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.Debug("using s3 assets source", log.URL("endpoint", client.EndpointURL()), slog.String("bucket", opts.Bucket))

	return NewFileSystem(client, opts.Bucket, opts.Prefix), nil
}

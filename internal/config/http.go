package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address           InterpolatedString    `yaml:"address"`
	ReadHeaderTimeout *InterpolatedDuration `yaml:"readHeaderTimeout"`
	RateLimit         RateLimit             `yaml:"rateLimit"`
}

type RateLimit struct {
	Rate  InterpolatedFloat     `yaml:"rate"`
	Burst InterpolatedInt       `yaml:"burst"`
	TTL   *InterpolatedDuration `yaml:"ttl"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address:           "${NAVBAR_HTTP_ADDRESS:-:8080}",
		ReadHeaderTimeout: NewInterpolatedDuration(10 * time.Second),
		RateLimit: RateLimit{
			Rate:  10,
			Burst: 20,
			TTL:   NewInterpolatedDuration(10 * time.Minute),
		},
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                   []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":           []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".readHeaderTimeout": []*yaml.Comment{yaml.HeadComment(" Maximum duration for reading request headers")},
		".rateLimit":         []*yaml.Comment{yaml.HeadComment(" Menu toggle requests rate limiting, per client address")},
		".rateLimit.rate":    []*yaml.Comment{yaml.HeadComment(" Allowed requests per second")},
		".rateLimit.burst":   []*yaml.Comment{yaml.HeadComment(" Maximum burst size")},
		".rateLimit.ttl":     []*yaml.Comment{yaml.HeadComment(" Idle clients are forgotten after this duration")},
	}
}

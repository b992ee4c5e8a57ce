package setup

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/navbar/internal/assets"
	"github.com/bornholm/navbar/internal/config"
	"github.com/bornholm/navbar/internal/landing"
	"github.com/bornholm/navbar/internal/ratelimit"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	source, err := NewAssetsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	mux.Handle("/images/", slogMiddleware(assets.Handler(source)))

	presets, err := NewPresetsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rateLimiter := ratelimit.New(rate.Limit(conf.HTTP.RateLimit.Rate), int(conf.HTTP.RateLimit.Burst))

	if ttl := conf.HTTP.RateLimit.TTL; ttl != nil && *ttl > 0 {
		go rateLimiter.Run(ctx, time.Duration(*ttl))
	}

	landingHandler := landing.NewHandler(
		presets,
		landing.WithToggleMiddleware(rateLimiter.Middleware(ratelimit.RemoteAddr)),
	)

	mux.Handle("/", slogMiddleware(landingHandler))

	slog.InfoContext(ctx, "navbar presets loaded", slog.Int("presets", len(presets)))

	return mux, nil
}

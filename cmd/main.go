package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bornholm/navbar/internal/config"
	"github.com/bornholm/navbar/internal/setup"
	"github.com/bornholm/navbar/pkg/log"
	"github.com/pkg/errors"
)

var (
	configFile string = ""
	dumpConfig bool   = false
)

func init() {
	flag.StringVar(&configFile, "config", configFile, "configuration file")
	flag.BoolVar(&dumpConfig, "dump-config", dumpConfig, "dump default configuration file and exit")
}

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.NewDefaultConfig()

	if dumpConfig {
		if err := config.Dump(os.Stdout, conf); err != nil {
			slog.ErrorContext(ctx, "could not dump config file", log.Error(errors.WithStack(err)))
			os.Exit(1)
		}

		os.Exit(0)
	}

	if configFile != "" {
		if err := config.LoadFile(configFile, conf); err != nil {
			slog.ErrorContext(ctx, "could not parse config file", log.Error(errors.WithStack(err)), slog.String("file", configFile))
			os.Exit(1)
		}
	}

	if err := config.Interpolate(conf); err != nil {
		slog.ErrorContext(ctx, "could not interpolate config file", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	handlerOptions := &slog.HandlerOptions{
		Level:     slog.Level(conf.Logger.Level),
		AddSource: true,
	}

	var handler slog.Handler
	switch string(conf.Logger.Format) {
	case config.LoggerFormatJSON:
		handler = slog.NewJSONHandler(os.Stderr, handlerOptions)
	default:
		handler = slog.NewTextHandler(os.Stderr, handlerOptions)
	}

	logger := slog.New(log.ContextHandler{
		Handler: handler,
	})

	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(slog.Level(conf.Logger.Level))

	httpHandler, err := setup.NewHandlerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not generate handler from config", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	server := http.Server{
		Addr:    string(conf.HTTP.Address),
		Handler: httpHandler,
	}

	if conf.HTTP.ReadHeaderTimeout != nil {
		server.ReadHeaderTimeout = time.Duration(*conf.HTTP.ReadHeaderTimeout)
	}

	slog.InfoContext(ctx, "http server listening", slog.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != nil {
		slog.ErrorContext(ctx, "could not listen", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}
}

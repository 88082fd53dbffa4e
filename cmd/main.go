package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/infratech/site/internal/config"
	"github.com/infratech/site/internal/setup"
	"github.com/infratech/site/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	_ "github.com/infratech/site/pkg/assets/all"
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

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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
	switch format := conf.Logger.Format.String(); format {
	case config.LoggerFormatJSON:
		handler = slog.NewJSONHandler(os.Stderr, handlerOptions)
	case config.LoggerFormatText:
		handler = slog.NewTextHandler(os.Stderr, handlerOptions)
	default:
		slog.ErrorContext(ctx, "unknown logger format", slog.String("format", format))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(log.ContextHandler{Handler: handler}))
	slog.SetLogLoggerLevel(slog.Level(conf.Logger.Level))

	httpHandler, err := setup.NewHandlerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not generate handler from config", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	if err := serve(ctx, conf, httpHandler); err != nil {
		slog.ErrorContext(ctx, "server stopped with error", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}
}

// serve runs the http server until ctx is done, then drains in-flight
// requests for at most the configured shutdown timeout.
func serve(ctx context.Context, conf *config.Config, handler http.Handler) error {
	server := &http.Server{
		Addr:              conf.HTTP.Address.String(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownTimeout := 5 * time.Second
	if conf.HTTP.ShutdownTimeout != nil {
		shutdownTimeout = time.Duration(*conf.HTTP.ShutdownTimeout)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.InfoContext(ctx, "http server listening", slog.String("addr", server.Addr))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.WithStack(err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		slog.InfoContext(ctx, "shutting down http server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

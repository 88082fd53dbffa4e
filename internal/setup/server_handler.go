package setup

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/infratech/site/internal/config"
	"github.com/infratech/site/internal/metrics"
	"github.com/infratech/site/internal/pprof"
	"github.com/infratech/site/internal/ratelimit"
	"github.com/infratech/site/internal/site"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

const rateLimiterPruneInterval = 5 * time.Minute

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	assets, err := NewAssetsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	content, err := NewContentFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	siteMetrics, err := NewMetricsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	siteOptions := []site.OptionFunc{
		site.WithTitle(conf.Site.Title.String()),
		site.WithContent(content),
		site.WithAssets(assets),
		site.WithMetrics(siteMetrics),
	}

	if bool(conf.RateLimit.Enabled) {
		limiter := ratelimit.New(rate.Limit(conf.RateLimit.Rate), int(conf.RateLimit.Burst))
		go limiter.PruneEvery(ctx, rateLimiterPruneInterval)

		siteOptions = append(siteOptions, site.WithRateLimiter(limiter))
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)

	// Forwarded headers are client controlled unless a proxy rewrites them
	if bool(conf.HTTP.TrustProxy) {
		router.Use(middleware.RealIP)
	}

	router.Use(
		sloghttp.New(slog.Default()),
		middleware.Recoverer,
	)

	if bool(conf.Debug.Metrics) {
		reg, err := NewMetricsRegistryFromConfig(ctx, conf)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		router.Handle("/metrics", metrics.Handler(reg))
	}

	if bool(conf.Debug.Pprof) {
		router.Mount("/debug/pprof", pprof.NewHandler())
	}

	router.Handle("/*", site.NewHandler(siteOptions...))

	return router, nil
}

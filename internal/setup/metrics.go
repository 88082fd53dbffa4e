package setup

import (
	"context"

	"github.com/infratech/site/internal/config"
	"github.com/infratech/site/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Counters can only be registered once per registry, hence the memoization.
var NewMetricsRegistryFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*prometheus.Registry, error) {
	return metrics.NewRegistry(), nil
})

var NewMetricsFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*metrics.Metrics, error) {
	if !bool(conf.Debug.Metrics) {
		return metrics.Noop(), nil
	}

	reg, err := NewMetricsRegistryFromConfig(ctx, conf)
	if err != nil {
		return nil, err
	}

	return metrics.New(reg), nil
})

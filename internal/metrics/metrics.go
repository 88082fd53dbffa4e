// Package metrics exposes the site's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "site"

type Metrics struct {
	// HeaderEvents counts header interactions, by event kind.
	HeaderEvents IncrementalCounter
	// Navigations counts navigation activations requested by the header, by
	// target path.
	Navigations IncrementalCounter
	// PageViews counts rendered pages, by page name.
	PageViews IncrementalCounter
}

func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HeaderEvents: NewCounter(reg, "header_events_total", "Number of header events handled.", "event"),
		Navigations:  NewCounter(reg, "navigations_total", "Number of navigations requested from the header.", "path"),
		PageViews:    NewCounter(reg, "page_views_total", "Number of rendered pages.", "page"),
	}
}

// NewRegistry returns a registry preloaded with the go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Noop returns metrics discarding every increment.
func Noop() *Metrics {
	return &Metrics{
		HeaderEvents: noopCounter{},
		Navigations:  noopCounter{},
		PageViews:    noopCounter{},
	}
}

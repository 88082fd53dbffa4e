package site

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/infratech/site/internal/metrics"
	"github.com/infratech/site/internal/navigation"
	"github.com/infratech/site/internal/ratelimit"
)

const DefaultTitle = "Infra Tech Solution"

type Handler struct {
	title   string
	tree    *navigation.Tree
	content *Content
	metrics *metrics.Metrics
	now     func() time.Time
	mux     *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type Options struct {
	Title       string
	Tree        *navigation.Tree
	Content     *Content
	Assets      fs.FS
	Metrics     *metrics.Metrics
	RateLimiter *ratelimit.RateLimiter
	Now         func() time.Time
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Title:   DefaultTitle,
		Tree:    navigation.DefaultTree,
		Content: DefaultContent(),
		Assets:  StaticFS(),
		Metrics: metrics.Noop(),
		Now:     time.Now,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithTitle(title string) OptionFunc {
	return func(opts *Options) {
		opts.Title = title
	}
}

func WithTree(tree *navigation.Tree) OptionFunc {
	return func(opts *Options) {
		opts.Tree = tree
	}
}

func WithContent(content *Content) OptionFunc {
	return func(opts *Options) {
		opts.Content = content
	}
}

// WithAssets replaces the filesystem served under /static/.
func WithAssets(assets fs.FS) OptionFunc {
	return func(opts *Options) {
		opts.Assets = assets
	}
}

func WithMetrics(m *metrics.Metrics) OptionFunc {
	return func(opts *Options) {
		opts.Metrics = m
	}
}

// WithRateLimiter limits the header events endpoint per client address.
func WithRateLimiter(limiter *ratelimit.RateLimiter) OptionFunc {
	return func(opts *Options) {
		opts.RateLimiter = limiter
	}
}

func WithNow(now func() time.Time) OptionFunc {
	return func(opts *Options) {
		opts.Now = now
	}
}

func NewHandler(funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	handler := &Handler{
		title:   opts.Title,
		tree:    opts.Tree,
		content: opts.Content,
		metrics: opts.Metrics,
		now:     opts.Now,
		mux:     &http.ServeMux{},
	}

	var events http.Handler = http.HandlerFunc(handler.serveHeaderEvent)
	if opts.RateLimiter != nil {
		events = opts.RateLimiter.Middleware(ratelimit.ClientAddress)(events)
	}

	// Register routes
	handler.mux.HandleFunc("GET /{$}", handler.serveHome)
	handler.mux.HandleFunc("GET /about", handler.servePage(pageAbout))
	handler.mux.HandleFunc("GET /services", handler.servePage(pageServices))
	handler.mux.HandleFunc("GET /mission", handler.servePage(pageMission))
	handler.mux.HandleFunc("GET /contact", handler.servePage(pageContact))
	handler.mux.Handle("POST /header/events", events)
	handler.mux.Handle("GET /static/", http.StripPrefix("/static", http.FileServerFS(opts.Assets)))
	handler.mux.HandleFunc("GET /healthz", handler.serveHealth)
	handler.mux.HandleFunc("GET /", handler.serveNotFound)

	return handler
}

var _ http.Handler = &Handler{}

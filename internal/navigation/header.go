// Package navigation implements the site header: the navigation tree, the
// side drawer state machine and its reactions to scroll and route signals.
package navigation

import (
	"context"
	"log/slog"

	"github.com/infratech/site/internal/signal"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

var ErrAlreadyMounted = errors.New("header already mounted")

type ScrollObserver interface {
	Subscribe(listener signal.Listener[float64]) *signal.Subscription
}

type RouteObserver interface {
	CurrentPath() string
	Subscribe(fn func(path string)) *signal.Subscription
}

type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (fn NavigatorFunc) Navigate(path string) {
	fn(path)
}

// Header owns the state of one rendered header. It is driven by a single
// goroutine and is not safe for concurrent use.
type Header struct {
	id        xid.ID
	tree      *Tree
	state     State
	path      string
	navigator Navigator
	logger    *slog.Logger

	subscriptions []*signal.Subscription
	mounted       bool
}

func (h *Header) ID() string {
	return h.id.String()
}

func (h *Header) State() State {
	return h.state
}

// Path returns the route path last observed by the header.
func (h *Header) Path() string {
	return h.path
}

func (h *Header) Tree() *Tree {
	return h.tree
}

func (h *Header) Mounted() bool {
	return h.mounted
}

// Mount subscribes the header to the scroll and route signals. Every
// successful call must be paired with Unmount.
func (h *Header) Mount(scroll ScrollObserver, routes RouteObserver) error {
	if h.mounted {
		return errors.WithStack(ErrAlreadyMounted)
	}

	h.path = routes.CurrentPath()

	h.subscriptions = append(h.subscriptions,
		scroll.Subscribe(h.handleScroll),
		routes.Subscribe(h.handleRouteChange),
	)

	h.mounted = true

	return nil
}

// Unmount releases the header's subscriptions. It is safe to call on an
// unmounted header.
func (h *Header) Unmount() {
	for _, sub := range h.subscriptions {
		sub.Unsubscribe()
	}

	h.subscriptions = nil
	h.mounted = false
}

// Dispatch applies evt and forwards any resulting navigation request to the
// navigator. The state is updated before the navigator runs.
func (h *Header) Dispatch(ctx context.Context, evt Event) State {
	next, activation := Transition(h.tree, h.state, evt)

	h.logger.DebugContext(ctx, "header event dispatched",
		slog.String("header", h.ID()),
		slog.String("event", string(evt.Kind)),
		slog.String("entry", evt.Entry),
		slog.Bool("drawerOpen", next.DrawerOpen),
		slog.String("activeDropdown", next.ActiveDropdown),
	)

	h.state = next

	if activation != nil && h.navigator != nil {
		h.navigator.Navigate(activation.Path)
	}

	return h.state
}

func (h *Header) handleScroll(offset float64) {
	h.state.Scrolled = IsScrolled(offset)
}

func (h *Header) handleRouteChange(path string) {
	h.path = path
	h.state.DrawerOpen = false
}

type Options struct {
	State     State
	Navigator Navigator
	Logger    *slog.Logger
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Logger: slog.Default(),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithState restores a previously rendered state.
func WithState(state State) OptionFunc {
	return func(opts *Options) {
		opts.State = state
	}
}

func WithNavigator(navigator Navigator) OptionFunc {
	return func(opts *Options) {
		opts.Navigator = navigator
	}
}

// WithLogger sets the logger of the header. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		if logger == nil {
			return
		}

		opts.Logger = logger
	}
}

func NewHeader(tree *Tree, funcs ...OptionFunc) *Header {
	opts := NewOptions(funcs...)

	state := opts.State
	if state.ActiveDropdown != "" {
		if entry, exists := tree.Entry(state.ActiveDropdown); !exists || !entry.HasChildren() {
			state.ActiveDropdown = ""
		}
	}

	return &Header{
		id:        xid.New(),
		tree:      tree,
		state:     state,
		navigator: opts.Navigator,
		logger:    opts.Logger,
	}
}

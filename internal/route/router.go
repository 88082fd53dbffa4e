// Package route tracks the page currently displayed and performs
// client-side navigation requests.
package route

import (
	"strings"
	"sync"

	"github.com/infratech/site/internal/signal"
)

// Router is both the route observer and the navigation activation sink.
type Router struct {
	current *signal.Signal[string]

	mu        sync.Mutex
	last      string
	navigated bool
}

func (r *Router) CurrentPath() string {
	return r.current.Value()
}

// Subscribe registers fn to be called on every navigation, including
// navigations to the path already displayed.
func (r *Router) Subscribe(fn func(path string)) *signal.Subscription {
	return r.current.Subscribe(fn)
}

// Navigate makes path the current path and notifies subscribers.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	r.last = path
	r.navigated = true
	r.mu.Unlock()

	r.current.Publish(path)
}

// LastNavigation returns the most recent navigation target, if any.
func (r *Router) LastNavigation() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.last, r.navigated
}

func NewRouter(initialPath string) *Router {
	return &Router{
		current: signal.New(initialPath),
	}
}

// Pathname strips the query and fragment parts of path.
func Pathname(path string) string {
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}

	if path == "" {
		return "/"
	}

	return path
}

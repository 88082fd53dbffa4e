// Package pprof serves the runtime profiles and expvars of the server.
package pprof

import (
	"expvar"
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
)

// NewHandler returns a router meant to be mounted under a prefix, e.g.
// /debug/pprof. The named profiles (heap, goroutine, allocs...) are resolved
// from the last path segment.
func NewHandler() http.Handler {
	router := chi.NewRouter()

	router.Get("/", pprof.Index)
	router.Get("/cmdline", pprof.Cmdline)
	router.Get("/profile", pprof.Profile)
	router.Post("/symbol", pprof.Symbol)
	router.Get("/symbol", pprof.Symbol)
	router.Get("/trace", pprof.Trace)
	router.Handle("/vars", expvar.Handler())

	router.Get("/{name}", func(w http.ResponseWriter, r *http.Request) {
		pprof.Handler(chi.URLParam(r, "name")).ServeHTTP(w, r)
	})

	return router
}

package site

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/infratech/site/internal/navigation"
	"github.com/infratech/site/internal/ui"
	"github.com/infratech/site/pkg/log"
	"github.com/pkg/errors"
)

type page string

const (
	pageHome     page = "home"
	pageAbout    page = "about"
	pageServices page = "services"
	pageMission  page = "mission"
	pageContact  page = "contact"
	pageNotFound page = "not-found"
)

func (h *Handler) serveHome(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, pageHome, http.StatusOK)
}

func (h *Handler) servePage(p page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderPage(w, r, p, http.StatusOK)
	}
}

func (h *Handler) serveNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, pageNotFound, http.StatusNotFound)
}

func (h *Handler) serveHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.ErrorContext(r.Context(), "could not encode health status", log.Error(errors.WithStack(err)))
	}
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, p page, status int) {
	ctx := r.Context()

	// A page load always starts with a closed drawer. The scrolled flag and
	// the expanded dropdown survive navigations through the query string.
	state, err := decodeState(r.URL.Query())
	if err != nil {
		slog.WarnContext(ctx, "ignoring invalid header state", log.Error(errors.WithStack(err)))
		state = navigation.State{}
	}

	state.DrawerOpen = false

	header := navigation.NewHeader(h.tree, navigation.WithState(state))

	data := h.newPageTemplateData(p, header.State(), r.URL.Path)

	if p != pageNotFound {
		h.metrics.PageViews.Increment(string(p))
	}

	var buff bytes.Buffer
	if err := templates.ExecuteTemplate(&buff, string(p), data); err != nil {
		slog.ErrorContext(ctx, "could not execute page template", log.Error(errors.WithStack(err)), slog.String("page", string(p)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if _, err := buff.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "could not write page", log.Error(errors.WithStack(err)))
	}
}

func (h *Handler) newPageTemplateData(p page, state navigation.State, path string) PageTemplateData {
	data := PageTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			SiteTitle:   h.title,
			Description: h.content.Tagline,
		},
		Header:  ui.NewHeaderTemplateData(h.title, h.tree, state, path),
		Footer:  ui.NewFooterTemplateData(h.title, h.content.Tagline, h.tree, h.now()),
		Content: h.content,
	}

	switch p {
	case pageAbout:
		data.Page = h.content.About
	case pageMission:
		data.Page = h.content.Mission
	case pageContact:
		data.Page = h.content.Contact
	case pageServices:
		data.Page = Page{Title: "Services", Intro: h.content.Expertise.Subtitle}
	case pageNotFound:
		data.Page = Page{Title: "Page not found", Intro: "The page you are looking for does not exist."}
	}

	data.PageTitle = data.Page.Title

	return data
}

package site

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-viper/mapstructure/v2"
	"github.com/infratech/site/internal/navigation"
	"github.com/infratech/site/internal/route"
	"github.com/infratech/site/internal/signal"
	"github.com/infratech/site/internal/ui"
	"github.com/infratech/site/pkg/log"
	"github.com/pkg/errors"
)

// eventScroll carries a new viewport offset rather than a header event.
const eventScroll = "scroll"

type eventRequest struct {
	navigation.State `mapstructure:",squash"`

	Event  string  `mapstructure:"event"`
	Entry  string  `mapstructure:"entry"`
	Child  string  `mapstructure:"child"`
	Offset float64 `mapstructure:"offset"`
	Path   string  `mapstructure:"path"`
}

// location is the value of the HX-Location response header.
type location struct {
	Path   string         `json:"path"`
	Target string         `json:"target"`
	Values map[string]any `json:"values,omitempty"`
}

func (h *Handler) serveHeaderEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		slog.WarnContext(ctx, "could not parse header event form", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req eventRequest
	if err := decodeForm(r.PostForm, &req); err != nil {
		slog.WarnContext(ctx, "could not decode header event", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	path := req.Path
	if path == "" {
		path = navigation.HomePath
	}

	router := route.NewRouter(path)
	viewport := signal.New(0.0)

	header := navigation.NewHeader(h.tree,
		navigation.WithState(req.State),
		navigation.WithNavigator(router),
		navigation.WithLogger(slog.Default()),
	)

	ctx = log.WithAttrs(ctx,
		slog.String("header", header.ID()),
		slog.String("event", req.Event),
	)

	if err := header.Mount(viewport, router); err != nil {
		slog.ErrorContext(ctx, "could not mount header", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	defer header.Unmount()

	if req.Event == eventScroll {
		viewport.Publish(req.Offset)
	} else {
		kind, err := navigation.ParseEventKind(req.Event)
		if err != nil {
			slog.WarnContext(ctx, "rejected header event", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		evt := navigation.Event{Kind: kind, Entry: req.Entry, Child: req.Child}

		if err := evt.Validate(h.tree); err != nil {
			slog.WarnContext(ctx, "rejected header event", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		header.Dispatch(ctx, evt)
	}

	h.metrics.HeaderEvents.Increment(req.Event)

	state := header.State()

	if target, navigated := router.LastNavigation(); navigated {
		h.metrics.Navigations.Increment(route.Pathname(target))

		loc, err := json.Marshal(location{
			Path:   target,
			Target: "body",
			Values: map[string]any{
				"dropdown": state.ActiveDropdown,
				"scrolled": state.Scrolled,
			},
		})
		if err != nil {
			slog.ErrorContext(ctx, "could not encode location", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("HX-Location", string(loc))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buff bytes.Buffer
	data := ui.NewHeaderTemplateData(h.title, h.tree, state, header.Path())
	if err := templates.ExecuteTemplate(&buff, "header", data); err != nil {
		slog.ErrorContext(ctx, "could not execute header template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := buff.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "could not write header", log.Error(errors.WithStack(err)))
	}
}

// decodeForm decodes the first value of each form field into result,
// converting scalars from their string form.
func decodeForm(values url.Values, result any) error {
	raw := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}

		raw[key] = vals[0]
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := decoder.Decode(raw); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func decodeState(values url.Values) (navigation.State, error) {
	var state navigation.State
	if err := decodeForm(values, &state); err != nil {
		return navigation.State{}, errors.WithStack(err)
	}

	return state, nil
}

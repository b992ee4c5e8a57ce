package landing

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/navbar/internal/ui"
	"github.com/bornholm/navbar/pkg/log"
	"github.com/bornholm/navbar/pkg/navbar"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// Preset is a named navbar configuration displayed on the landing page.
type Preset struct {
	Name  string
	Props navbar.Props
}

type Handler struct {
	mux     *http.ServeMux
	presets []Preset
	index   map[string]int
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type Options struct {
	ToggleMiddleware func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		ToggleMiddleware: func(next http.Handler) http.Handler {
			return next
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithToggleMiddleware wraps the menu toggle endpoint, e.g. to rate limit it.
func WithToggleMiddleware(middleware func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.ToggleMiddleware = middleware
	}
}

func NewHandler(presets []Preset, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	handler := &Handler{
		mux:     &http.ServeMux{},
		presets: presets,
		index:   make(map[string]int, len(presets)),
	}

	for idx, p := range presets {
		handler.index[p.Name] = idx
	}

	handler.mux.HandleFunc("GET /{$}", handler.serveIndex)
	handler.mux.Handle("POST /navbars/{preset}/toggle", opts.ToggleMiddleware(http.HandlerFunc(handler.serveToggle)))

	return handler
}

func ToggleAction(preset string) string {
	return fmt.Sprintf("/navbars/%s/toggle", url.PathEscape(preset))
}

// serveIndex mounts a fresh, collapsed instance of every preset
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := LandingTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Navbar presets",
		},
		Navbars: make([]ui.NavbarTemplateData, 0, len(h.presets)),
	}

	for _, p := range h.presets {
		data.Navbars = append(data.Navbars, ui.NewNavbarTemplateData(p.Props, ToggleAction(p.Name)))
	}

	var buff bytes.Buffer

	if err := templates.ExecuteTemplate(&buff, "index", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.DebugContext(ctx, "landing page rendered", slog.Int("navbars", len(data.Navbars)), slog.String("size", humanize.Bytes(uint64(buff.Len()))))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := buff.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "could not write response", log.Error(errors.WithStack(err)))
	}
}

// serveToggle inverts the state posted by an instance toggle control and
// answers with the instance content rendered with the new state
func (h *Handler) serveToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	presetName := r.PathValue("preset")

	presetIndex, exists := h.index[presetName]
	if !exists {
		http.NotFound(w, r)
		return
	}

	preset := h.presets[presetIndex]

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	instanceID, err := xid.FromString(r.FormValue("instance"))
	if err != nil {
		slog.DebugContext(ctx, "invalid instance id", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	state, err := navbar.ParseState(r.FormValue("state"))
	if err != nil {
		slog.DebugContext(ctx, "invalid navbar state", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx = log.WithAttrs(ctx, slog.String("preset", preset.Name), slog.String("instance", instanceID.String()))

	instance := navbar.RestoreInstance(instanceID, preset.Props, state)
	next := instance.Toggle()

	slog.DebugContext(ctx, "navbar toggled", slog.String("from", state.String()), slog.String("to", next.String()))

	node := instance.RenderContent(
		navbar.WithToggleBinding(instance.HTMXBinding(ToggleAction(preset.Name))),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := navbar.Write(w, node); err != nil {
		slog.ErrorContext(ctx, "could not write navbar", log.Error(errors.WithStack(err)))
	}
}

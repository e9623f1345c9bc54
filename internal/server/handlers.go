package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/matthewbaird/catalogview/internal/entitylink"
	"github.com/matthewbaird/catalogview/internal/render"
	"github.com/matthewbaird/catalogview/internal/routes"
	"github.com/matthewbaird/catalogview/internal/widget"
)

type handler struct {
	builder *widget.Builder
	logger  *zap.Logger
}

var widgetTitles = map[string]string{
	render.WidgetStats:      "My data",
	render.WidgetResolution: "Resolution center",
	render.WidgetSidebar:    "Lineage",
	render.WidgetColumns:    "Schema",
}

func options(r *http.Request) widget.Options {
	return widget.Options{
		Page:           parsePage(r),
		ShowPagination: queryBool(r, "pagination", true),
		ShowSidebar:    queryBool(r, "show", true),
		ExpandColumns:  queryBool(r, "expand", false),
		DragColumns:    queryBool(r, "drag", false),
		Loading:        queryBool(r, "loading", false),
	}
}

// build writes the error response itself and reports whether it succeeded.
func (h *handler) build(w http.ResponseWriter, r *http.Request) (string, any, bool) {
	name := chi.URLParam(r, "name")
	m, err := h.builder.Build(name, options(r))
	if errors.Is(err, render.ErrUnknownWidget) {
		writeError(w, h.logger, http.StatusNotFound, "UNKNOWN_WIDGET", "unknown widget: "+name)
		return "", nil, false
	}
	if err != nil {
		h.logger.Error("building widget", zap.String("widget", name), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "INTERNAL", err.Error())
		return "", nil, false
	}
	return name, m, true
}

func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	name, m, ok := h.build(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.Page(&buf, widgetTitles[name], name, m); err != nil {
		h.logger.Error("rendering widget", zap.String("widget", name), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "RENDER_FAILED", err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *handler) model(w http.ResponseWriter, r *http.Request) {
	if _, m, ok := h.build(w, r); ok {
		writeJSON(w, h.logger, http.StatusOK, m)
	}
}

func (h *handler) listWidgets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string][]string{"widgets": render.Widgets})
}

func (h *handler) parseLink(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, h.logger, http.StatusBadRequest, "MISSING_TOKEN", "query parameter token is required")
		return
	}
	link, err := entitylink.Parse(token)
	if err != nil {
		body := apiError{Error: err.Error(), Code: "MALFORMED_LINK"}
		var perr *entitylink.ParseError
		if errors.As(err, &perr) {
			body.Pos = &perr.Pos
			body.Suggestion = perr.Suggestion
		}
		writeJSON(w, h.logger, http.StatusBadRequest, body)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, struct {
		entitylink.Link
		IsColumn bool `json:"isColumn"`
	}{link, link.IsColumn()})
}

func (h *handler) generateLink(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("fqn")
	if name == "" {
		writeError(w, h.logger, http.StatusBadRequest, "MISSING_FQN", "query parameter fqn is required")
		return
	}
	token, err := entitylink.Generate(name, queryBool(r, "column", false))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "INVALID_FQN", err.Error())
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"token": token})
}

func (h *handler) entityPath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, h.logger, http.StatusOK, map[string]string{
		"path": routes.EntityPath(q.Get("type"), q.Get("fqn")),
	})
}

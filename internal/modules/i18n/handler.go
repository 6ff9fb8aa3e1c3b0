package i18n

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler serves translation tables to the presentation layer.
type Handler struct{ bundle *Bundle }

func NewHandler(bundle *Bundle) *Handler { return &Handler{bundle: bundle} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/i18n", func(r chi.Router) {
		r.Get("/", h.listLanguages)
		r.Get("/{lang}", h.getTable)
	})
}

func (h *Handler) listLanguages(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]interface{}{"languages": h.bundle.Languages()})
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	table, ok := h.bundle.Table(lang)
	if !ok {
		http.Error(w, "no translations loaded", http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, table)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

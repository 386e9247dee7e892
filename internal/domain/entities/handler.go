package entities

import (
	"encoding/json"
	"errors"
	"net/http"

	"kaupapa-calendar/internal/middleware"
	"kaupapa-calendar/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

type handlers struct {
	svc *Service
	log logger.Logger
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := &handlers{svc: svc, log: log.With(map[string]any{"module": "entities"})}

	r.Get("/entities", h.list)
	r.Get("/entities/{entityID}", h.get)

	r.Get("/me", h.me)
	r.Get("/me/others", h.others)
}

// entityResponse representa un kaupapa del catálogo.
type entityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// list godoc
// @Summary Listar entidades
// @Description Catálogo completo de kaupapa en orden de registro. No requiere entidad que actúa.
// @Tags entities
// @Produce json
// @Success 200 {array} entityResponse
// @Router /entities [get]
func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponses(items))
}

// get godoc
// @Summary Ver una entidad
// @Tags entities
// @Produce json
// @Param entityID path string true "ID de la entidad"
// @Success 200 {object} entityResponse
// @Failure 404 {string} string "entity not found"
// @Router /entities/{entityID} [get]
func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "entityID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(e))
}

// me godoc
// @Summary Entidad que actúa
// @Description Devuelve la entidad resuelta por `X-Entity-ID` (dev) o por el token.
// @Tags entities
// @Produce json
// @Param X-Entity-ID header string false "Solo en modo dev, entidad que actúa"
// @Success 200 {object} entityResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "unknown entity"
// @Router /me [get]
func (h *handlers) me(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActingEntity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	e, err := h.svc.Current(r.Context(), actor)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "unknown entity", http.StatusForbidden)
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(e))
}

// others godoc
// @Summary Otras entidades
// @Description Todas las entidades excepto la que actúa (para los filtros del calendario).
// @Tags entities
// @Produce json
// @Param X-Entity-ID header string false "Solo en modo dev, entidad que actúa"
// @Success 200 {array} entityResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "unknown entity"
// @Router /me/others [get]
func (h *handlers) others(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActingEntity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if !h.svc.Exists(r.Context(), actor) {
		http.Error(w, "unknown entity", http.StatusForbidden)
		return
	}

	items, err := h.svc.ListOthers(r.Context(), actor)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponses(items))
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "entity not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.log.Error("entities: internal error", map[string]any{"error": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResponse(e Entity) entityResponse {
	return entityResponse{ID: e.ID, Name: e.Name, Color: e.Color}
}

func toResponses(items []Entity) []entityResponse {
	out := make([]entityResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toResponse(e))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

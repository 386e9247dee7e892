package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"kaupapa-calendar/internal/middleware"
	"kaupapa-calendar/internal/platform/logger"
	"kaupapa-calendar/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// EntityLookup evita importar el paquete entities desde acá.
type EntityLookup interface {
	Exists(ctx context.Context, id string) bool
}

type handlers struct {
	svc      *Service
	entities EntityLookup
	v        *validate.Validator
	log      logger.Logger
}

func RegisterRoutes(r chi.Router, svc *Service, ents EntityLookup, v *validate.Validator, log logger.Logger) {
	h := &handlers{svc: svc, entities: ents, v: v, log: log.With(map[string]any{"module": "events"})}

	r.Route("/events", func(er chi.Router) {
		er.Get("/", h.listAll)
		er.Post("/", h.create)

		er.Get("/mine", h.listMine)
		er.Get("/others", h.listOthers)

		er.Get("/{eventID}", h.get)
		er.Patch("/{eventID}", h.update)
		er.Delete("/{eventID}", h.delete)
	})

	r.Get("/clashes", h.clashes)
	r.Get("/stats", h.stats)
}

// createEventRequest es el cuerpo para crear un evento. Date YYYY-MM-DD, horas HH:mm opcionales.
type createEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date" validate:"required,isodate"`
	StartTime   string `json:"start_time" validate:"omitempty,clock"`
	EndTime     string `json:"end_time" validate:"omitempty,clock"`
}

// updateEventRequest: punteros para PATCH real, nil = no tocar.
// start_time/end_time aceptan null o "" para volver a "sin hora".
type updateEventRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Date        *string `json:"date" validate:"omitnil,isodate"`
	StartTime   *string `json:"start_time" validate:"omitnil,clock_or_empty"`
	EndTime     *string `json:"end_time" validate:"omitnil,clock_or_empty"`
}

// eventResponse representa un evento devuelto por la API.
type eventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty"`
	EntityID    string    `json:"entity_id"`
	IsMine      bool      `json:"is_mine"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// savedEventResponse es el evento guardado más los avisos de clash (no bloquean).
type savedEventResponse struct {
	eventResponse
	Clashes []eventResponse `json:"clashes"`
}

type statsResponse struct {
	Upcoming int `json:"upcoming"`
	ThisWeek int `json:"this_week"`
	Past     int `json:"past"`
}

// listAll godoc
// @Summary Listar eventos (calendario)
// @Description Devuelve los eventos propios más los de las entidades del filtro (vacío = todas), ordenados por fecha. Con `date` devuelve solo esa fecha. Autenticación: `X-Entity-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Produce json
// @Param X-Entity-ID header string false "Solo en modo dev, entidad que actúa"
// @Param entities query string false "Lista CSV de entidades a incluir (ej: kp-2,kp-3)"
// @Param date query string false "Fecha exacta YYYY-MM-DD"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "date inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "unknown entity"
// @Router /events [get]
func (h *handlers) listAll(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actingEntity(w, r)
	if !ok {
		return
	}

	filter := parseEntityFilter(r)

	var (
		items []Event
		err   error
	)
	if date := strings.TrimSpace(r.URL.Query().Get("date")); date != "" {
		if !validate.IsDate(date) {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		items, err = h.svc.ListOnDate(r.Context(), actor, date, filter)
	} else {
		items, err = h.svc.ListAll(r.Context(), actor, filter)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponses(items, actor))
}

// listMine godoc
// @Summary Listar mis eventos
// @Description Eventos de la entidad que actúa, ordenados por fecha.
// @Tags events
// @Produce json
// @Param X-Entity-ID header string false "Solo en modo dev, entidad que actúa"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "unknown entity"
// @Router /events/mine [get]
func (h *handlers) listMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actingEntity(w, r)
	if !ok {
		return
	}

	items, err := h.svc.ListMine(r.Context(), actor)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(items, actor))
}

// listOthers godoc
// @Summary Listar eventos de otras entidades
// @Description Eventos que no son de la entidad que actúa, opcionalmente filtrados por entidad (vacío = todas).
// @Tags events
// @Produce json
// @Param X-Entity-ID header string false "Solo en modo dev, entidad que actúa"
// @Param entities query string false "Lista CSV de entidades a incluir"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "unknown entity"
// @Router /events/others [get]
func (h *handlers) listOthers(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actingEntity(w, r)
	if !ok {
		return
	}

	items, err := h.svc.ListOthers(r.Context(), actor, parseEntityFilter(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(items, actor))
}

// get godoc
// @Summary Ver un evento
// @Tags events
// @Produce json
// @Param X-Entity-ID header string false "Solo en modo dev, entidad que actúa"
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [get]
func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actingEntity(w, r)
	if !ok {
		return
	}

	e, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(e, actor))
}

// create godoc
// @Summary Crear evento
// @Description Crea un evento a nombre de la entidad que actúa. La respuesta incluye `clashes` con eventos de otras entidades que se superponen; es solo un aviso, el evento se guarda igual.
// @Tags events
// @Accept json
// @Produce json
// @Param X-Entity-ID header string false "Solo en modo dev, entidad que actúa"
// @Param payload body createEventRequest true "Datos del evento"
// @Success 201 {object} savedEventResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "unknown entity"
// @Router /events [post]
func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actingEntity(w, r)
	if !ok {
		return
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if err := h.v.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Primero el aviso, después guardar: el clash nunca bloquea.
	clashes, err := h.svc.Clashes(r.Context(), actor, ClashQuery{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	e, err := h.svc.Create(r.Context(), actor, CreateInput{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logClashes(actor, e, clashes)
	writeJSON(w, http.StatusCreated, savedEventResponse{
		eventResponse: toEventResponse(e, actor),
		Clashes:       toEventResponses(clashes, actor),
	})
}

// update godoc
// @Summary Actualizar evento
// @Description Update parcial de un evento propio. Solo la entidad dueña puede editarlo. `start_time`/`end_time` en null o "" lo dejan sin hora. La respuesta incluye `clashes` (aviso).
// @Tags events
// @Accept json
// @Produce json
// @Param X-Entity-ID header string false "Solo en modo dev, entidad que actúa"
// @Param eventID path string true "ID del evento"
// @Param payload body updateEventRequest true "Campos a cambiar"
// @Success 200 {object} savedEventResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [patch]
func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actingEntity(w, r)
	if !ok {
		return
	}

	eventID := chi.URLParam(r, "eventID")

	// Ownership primero, para no validar body de eventos ajenos.
	current, err := h.svc.GetByID(r.Context(), eventID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !IsMine(current, actor) {
		h.writeError(w, ErrForbidden)
		return
	}

	// Decodificamos a map primero para detectar "start_time": null (= limpiar).
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	var (
		raw map[string]json.RawMessage
		req updateEventRequest
	)
	if json.Unmarshal(body, &raw) != nil || json.Unmarshal(body, &req) != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	req.StartTime = clearIfNull(raw, "start_time", req.StartTime)
	req.EndTime = clearIfNull(raw, "end_time", req.EndTime)

	if err := h.v.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patch := Patch{
		Title:       trimmed(req.Title),
		Description: trimmed(req.Description),
		Location:    trimmed(req.Location),
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	updated, err := h.svc.Update(r.Context(), actor, eventID, patch)
	if err != nil {
		h.writeError(w, err)
		return
	}

	// El aviso sale del registro ya guardado, no del snapshot previo.
	clashes, err := h.svc.Clashes(r.Context(), actor, ClashQuery{
		Date:           updated.Date,
		StartTime:      updated.StartTime,
		EndTime:        updated.EndTime,
		ExcludeEventID: updated.ID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logClashes(actor, updated, clashes)
	writeJSON(w, http.StatusOK, savedEventResponse{
		eventResponse: toEventResponse(updated, actor),
		Clashes:       toEventResponses(clashes, actor),
	})
}

// delete godoc
// @Summary Borrar evento
// @Description Borra un evento propio. Eventos de otras entidades devuelven 403 y no se tocan.
// @Tags events
// @Param X-Entity-ID header string false "Solo en modo dev, entidad que actúa"
// @Param eventID path string true "ID del evento"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [delete]
func (h *handlers) delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actingEntity(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), actor, chi.URLParam(r, "eventID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// clashes godoc
// @Summary Detectar clashes
// @Description Devuelve eventos de otras entidades que se superponen con el rango candidato. Sin `start_time` se considera día completo y choca con todo lo de esa fecha. Intervalos que se tocan (10:00 fin / 10:00 inicio) no chocan.
// @Tags events
// @Produce json
// @Param X-Entity-ID header string false "Solo en modo dev, entidad que actúa"
// @Param date query string true "Fecha YYYY-MM-DD"
// @Param start_time query string false "HH:mm"
// @Param end_time query string false "HH:mm"
// @Param exclude_event_id query string false "Evento a ignorar (re-chequeo al editar)"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /clashes [get]
func (h *handlers) clashes(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actingEntity(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	query := ClashQuery{
		Date:           strings.TrimSpace(q.Get("date")),
		StartTime:      strings.TrimSpace(q.Get("start_time")),
		EndTime:        strings.TrimSpace(q.Get("end_time")),
		ExcludeEventID: strings.TrimSpace(q.Get("exclude_event_id")),
	}
	if err := h.v.Var(query.Date, "required,isodate"); err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if h.v.Var(query.StartTime, "omitempty,clock") != nil || h.v.Var(query.EndTime, "omitempty,clock") != nil {
		http.Error(w, "times must be HH:mm", http.StatusBadRequest)
		return
	}

	items, err := h.svc.Clashes(r.Context(), actor, query)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(items, actor))
}

// stats godoc
// @Summary Contadores del dashboard
// @Description upcoming (fecha >= hoy), this_week (hoy..domingo) y past (< hoy) de los eventos propios. `now` permite fijar la fecha de referencia.
// @Tags events
// @Produce json
// @Param X-Entity-ID header string false "Solo en modo dev, entidad que actúa"
// @Param now query string false "RFC3339 o YYYY-MM-DD"
// @Success 200 {object} statsResponse
// @Failure 400 {string} string "now inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /stats [get]
func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actingEntity(w, r)
	if !ok {
		return
	}

	var (
		s   Stats
		err error
	)
	if v := strings.TrimSpace(r.URL.Query().Get("now")); v != "" {
		now, perr := parseNow(v)
		if perr != nil {
			http.Error(w, "now must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		s, err = h.svc.StatsAt(r.Context(), actor, now)
	} else {
		s, err = h.svc.Stats(r.Context(), actor)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Upcoming: s.Upcoming,
		ThisWeek: s.ThisWeek,
		Past:     s.Past,
	})
}

// actingEntity exige una entidad que actúa y que esté registrada.
func (h *handlers) actingEntity(w http.ResponseWriter, r *http.Request) (string, bool) {
	actor, ok := middleware.ActingEntity(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	if !h.entities.Exists(r.Context(), actor) {
		http.Error(w, "unknown entity", http.StatusForbidden)
		return "", false
	}
	return actor, true
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.log.Error("events: internal error", map[string]any{"error": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *handlers) logClashes(actor string, e Event, clashes []Event) {
	if len(clashes) == 0 {
		return
	}
	ids := make([]string, 0, len(clashes))
	for _, c := range clashes {
		ids = append(ids, c.ID)
	}
	h.log.Debug("clash warning", map[string]any{
		"entity_id": actor,
		"event_id":  e.ID,
		"date":      e.Date,
		"clashes":   ids,
	})
}

// parseEntityFilter lee entities=kp-2,kp-3 (también acepta el param repetido).
func parseEntityFilter(r *http.Request) []string {
	out := make([]string, 0)
	for _, v := range r.URL.Query()["entities"] {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// parseNow acepta RFC3339 o una fecha (medianoche local).
func parseNow(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.ParseInLocation(validate.DateLayout, v, time.Local)
}

// clearIfNull convierte "campo": null en puntero a "" (limpiar la hora).
func clearIfNull(raw map[string]json.RawMessage, key string, cur *string) *string {
	v, exists := raw[key]
	if !exists || string(v) != "null" {
		return cur
	}
	empty := ""
	return &empty
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func toEventResponse(e Event, actor string) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		EntityID:    e.EntityID,
		IsMine:      IsMine(e, actor),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEventResponses(items []Event, actor string) []eventResponse {
	out := make([]eventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEventResponse(e, actor))
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

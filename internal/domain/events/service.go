package events

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("event not found")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// ListMine devuelve los eventos del actor ordenados por fecha.
func (s *Service) ListMine(ctx context.Context, actorID string) ([]Event, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil, ErrInvalidInput
	}

	items, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}
	return sortByDate(keep(items, func(e Event) bool {
		return e.EntityID == actorID
	})), nil
}

// ListOthers devuelve eventos de otras entidades. Filtro vacío = sin restricción.
func (s *Service) ListOthers(ctx context.Context, actorID string, entityIDs []string) ([]Event, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil, ErrInvalidInput
	}

	items, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}
	allowed := entitySet(entityIDs)
	return sortByDate(keep(items, func(e Event) bool {
		return e.EntityID != actorID && allowed.has(e.EntityID)
	})), nil
}

// ListAll devuelve los eventos propios siempre, más los de las entidades del
// filtro (filtro vacío = todas).
func (s *Service) ListAll(ctx context.Context, actorID string, entityIDs []string) ([]Event, error) {
	return s.listAll(ctx, actorID, entityIDs, ListFilter{})
}

// ListOnDate es ListAll restringido a una fecha exacta.
func (s *Service) ListOnDate(ctx context.Context, actorID, date string, entityIDs []string) ([]Event, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, ErrInvalidInput
	}
	return s.listAll(ctx, actorID, entityIDs, ListFilter{Date: date})
}

func (s *Service) listAll(ctx context.Context, actorID string, entityIDs []string, filter ListFilter) ([]Event, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil, ErrInvalidInput
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	allowed := entitySet(entityIDs)
	return sortByDate(keep(items, func(e Event) bool {
		return e.EntityID == actorID || allowed.has(e.EntityID)
	})), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Create asigna id, dueño (actor) y timestamps. No valida campos: eso es del caller.
func (s *Service) Create(ctx context.Context, actorID string, in CreateInput) (Event, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return Event{}, ErrInvalidInput
	}

	now := s.now()
	e := Event{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		EntityID:    actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Update mezcla el patch sobre el evento si es del actor y refresca UpdatedAt.
// Si no existe o es de otra entidad no cambia nada.
func (s *Service) Update(ctx context.Context, actorID, id string, p Patch) (Event, error) {
	actorID = strings.TrimSpace(actorID)
	id = strings.TrimSpace(id)
	if actorID == "" {
		return Event{}, ErrInvalidInput
	}
	if id == "" {
		return Event{}, ErrNotFound
	}

	now := s.now()
	return s.repo.Update(ctx, id, actorID, func(e *Event) {
		p.Apply(e)
		e.UpdatedAt = now
	})
}

// Delete borra el evento si es del actor.
func (s *Service) Delete(ctx context.Context, actorID, id string) error {
	actorID = strings.TrimSpace(actorID)
	id = strings.TrimSpace(id)
	if actorID == "" {
		return ErrInvalidInput
	}
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id, actorID)
}

// Clashes corre el detector contra un snapshot de la fecha candidata.
func (s *Service) Clashes(ctx context.Context, actorID string, q ClashQuery) ([]Event, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil, ErrInvalidInput
	}
	q.Date = strings.TrimSpace(q.Date)
	if q.Date == "" {
		return nil, ErrInvalidInput
	}

	pool, err := s.repo.List(ctx, ListFilter{Date: q.Date})
	if err != nil {
		return nil, err
	}
	return DetectClashes(pool, actorID, q), nil
}

// Stats usa el reloj del servicio.
func (s *Service) Stats(ctx context.Context, actorID string) (Stats, error) {
	return s.StatsAt(ctx, actorID, s.now())
}

// StatsAt permite fijar "ahora" (tests, dashboards históricos).
func (s *Service) StatsAt(ctx context.Context, actorID string, now time.Time) (Stats, error) {
	mine, err := s.ListMine(ctx, actorID)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(mine, now), nil
}

// helpers

type idSet map[string]struct{}

// entitySet arma el filtro; nil = sin restricción.
func entitySet(ids []string) idSet {
	out := idSet{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out[id] = struct{}{}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (s idSet) has(id string) bool {
	if s == nil {
		return true
	}
	_, ok := s[id]
	return ok
}

func keep(in []Event, pred func(Event) bool) []Event {
	out := make([]Event, 0, len(in))
	for _, e := range in {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// sortByDate es estable: dentro de una fecha se respeta el orden natural.
func sortByDate(in []Event) []Event {
	sort.SliceStable(in, func(i, j int) bool {
		return in[i].Date < in[j].Date
	})
	return in
}

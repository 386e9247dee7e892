package memory

import (
	"context"
	"errors"
	"sync"

	"kaupapa-calendar/internal/domain/events"
)

// eventRepo guarda los eventos en un map + slice de orden de inserción.
// Todas las escrituras toman el lock exclusivo, así el chequeo de ownership
// y la mutación de Update/Delete son atómicos entre sí.
type eventRepo struct {
	mu    sync.RWMutex
	byID  map[string]events.Event
	order []string
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[string]events.Event),
	}
}

func (r *eventRepo) Create(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}

	r.byID[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return events.Event{}, events.ErrNotFound
	}
	return e, nil
}

func (r *eventRepo) List(ctx context.Context, filter events.ListFilter) ([]events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.Event, 0, len(r.order))
	for _, id := range r.order {
		e := r.byID[id]
		if filter.Date != "" && e.Date != filter.Date {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *eventRepo) Update(ctx context.Context, id, actorID string, mutate func(*events.Event)) (events.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return events.Event{}, events.ErrNotFound
	}
	if e.EntityID != actorID {
		return events.Event{}, events.ErrForbidden
	}

	// mutate trabaja sobre una copia; lo inmutable se restaura por si acaso.
	next := e
	mutate(&next)
	next.ID = e.ID
	next.EntityID = e.EntityID
	next.CreatedAt = e.CreatedAt

	r.byID[id] = next
	return next, nil
}

func (r *eventRepo) Delete(ctx context.Context, id, actorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return events.ErrNotFound
	}
	if e.EntityID != actorID {
		return events.ErrForbidden
	}

	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

package events

import "context"

// Repository es el puerto de almacenamiento de eventos.
//
// Update y Delete reciben el actor para que el chequeo de ownership y la
// mutación sean atómicos dentro del adapter (un Delete concurrente no puede
// colarse entre el chequeo y la escritura).
type Repository interface {
	Create(ctx context.Context, e Event) error
	GetByID(ctx context.Context, id string) (Event, error)

	// List devuelve un snapshot en el orden natural del store (inserción).
	List(ctx context.Context, filter ListFilter) ([]Event, error)

	// Update aplica mutate sobre el evento si existe y es del actor.
	// Errores: ErrNotFound, ErrForbidden.
	Update(ctx context.Context, id, actorID string, mutate func(*Event)) (Event, error)

	// Delete borra el evento si existe y es del actor.
	// Errores: ErrNotFound, ErrForbidden.
	Delete(ctx context.Context, id, actorID string) error
}

// ListFilter es el único filtro que empujamos al storage; la semántica de
// ownership (mine/others/all) vive en el Service para que todos los adapters
// se comporten igual.
type ListFilter struct {
	Date string // YYYY-MM-DD exacto, "" = cualquier fecha
}

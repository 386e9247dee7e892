package memory

import (
	"context"

	"kaupapa-calendar/internal/domain/entities"
)

// entityRepo es inmutable después de construirse, no necesita lock.
type entityRepo struct {
	list []entities.Entity
	byID map[string]entities.Entity
}

func NewEntityRepo(seed []entities.Entity) entities.Repository {
	r := &entityRepo{
		list: make([]entities.Entity, 0, len(seed)),
		byID: make(map[string]entities.Entity, len(seed)),
	}
	for _, e := range seed {
		if e.ID == "" {
			continue
		}
		if _, dup := r.byID[e.ID]; dup {
			continue
		}
		r.list = append(r.list, e)
		r.byID[e.ID] = e
	}
	return r
}

func (r *entityRepo) List(ctx context.Context) ([]entities.Entity, error) {
	out := make([]entities.Entity, len(r.list))
	copy(out, r.list)
	return out, nil
}

func (r *entityRepo) GetByID(ctx context.Context, id string) (entities.Entity, error) {
	e, ok := r.byID[id]
	if !ok {
		return entities.Entity{}, entities.ErrNotFound
	}
	return e, nil
}

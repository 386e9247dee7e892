package entities

import "context"

// Repository es de solo lectura: el catálogo se siembra al arrancar y no muta.
type Repository interface {
	List(ctx context.Context) ([]Entity, error)
	GetByID(ctx context.Context, id string) (Entity, error)
}

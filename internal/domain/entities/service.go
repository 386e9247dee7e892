package entities

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("entity not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List devuelve el catálogo en orden de inserción.
func (s *Service) List(ctx context.Context) ([]Entity, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Entity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Entity{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Current resuelve la entidad que actúa en esta request/sesión.
func (s *Service) Current(ctx context.Context, actorID string) (Entity, error) {
	return s.GetByID(ctx, actorID)
}

// ListOthers devuelve todas las entidades excepto la que actúa, en orden de inserción.
func (s *Service) ListOthers(ctx context.Context, actorID string) ([]Entity, error) {
	actorID = strings.TrimSpace(actorID)

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Entity, 0, len(all))
	for _, e := range all {
		if e.ID == actorID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Exists es el lookup que usan middleware/handlers para rechazar actores desconocidos.
func (s *Service) Exists(ctx context.Context, id string) bool {
	_, err := s.GetByID(ctx, id)
	return err == nil
}

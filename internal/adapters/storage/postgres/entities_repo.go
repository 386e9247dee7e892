package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"kaupapa-calendar/internal/domain/entities"
)

type EntitiesRepo struct {
	db *sql.DB
}

func NewEntitiesRepo(db *sql.DB) *EntitiesRepo {
	return &EntitiesRepo{db: db}
}

func (r *EntitiesRepo) List(ctx context.Context) ([]entities.Entity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color FROM kaupapa ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Entity, 0)
	for rows.Next() {
		var e entities.Entity
		if err := rows.Scan(&e.ID, &e.Name, &e.Color); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EntitiesRepo) GetByID(ctx context.Context, id string) (entities.Entity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Entity{}, entities.ErrNotFound
	}

	var e entities.Entity
	err := r.db.QueryRowContext(ctx, `SELECT id, name, color FROM kaupapa WHERE id = $1`, id).
		Scan(&e.ID, &e.Name, &e.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Entity{}, entities.ErrNotFound
	}
	return e, err
}

// SeedEntities inserta el catálogo si falta; las filas existentes no se tocan.
func SeedEntities(ctx context.Context, db *sql.DB, list []entities.Entity) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, e := range list {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO kaupapa (id, name, color) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING
		`, e.ID, e.Name, e.Color); err != nil {
			return err
		}
	}
	return tx.Commit()
}

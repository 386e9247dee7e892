package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"kaupapa-calendar/internal/domain/events"
)

const eventColumns = `
	id, title, description, location,
	date, start_time, end_time,
	entity_id, created_at, updated_at
`

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kaupapa_events (`+eventColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		e.ID,
		e.Title,
		e.Description,
		e.Location,
		e.Date,
		e.StartTime,
		e.EndTime,
		e.EntityID,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.Event{}, events.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM kaupapa_events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return events.Event{}, events.ErrNotFound
	}
	return e, err
}

// List respeta el orden de inserción (seq); el service ordena por fecha después.
func (r *EventsRepo) List(ctx context.Context, filter events.ListFilter) ([]events.Event, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if filter.Date != "" {
		rows, err = r.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM kaupapa_events WHERE date = $1 ORDER BY seq`, filter.Date)
	} else {
		rows, err = r.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM kaupapa_events ORDER BY seq`)
	}
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update bloquea la fila (FOR UPDATE) para que ownership y escritura sean atómicos.
func (r *EventsRepo) Update(ctx context.Context, id, actorID string, mutate func(*events.Event)) (events.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return events.Event{}, err
	}
	defer func() { _ = tx.Rollback() }()

	cur, err := lockEvent(ctx, tx, id, actorID)
	if err != nil {
		return events.Event{}, err
	}

	next := cur
	mutate(&next)
	next.ID = cur.ID
	next.EntityID = cur.EntityID
	next.CreatedAt = cur.CreatedAt

	if _, err := tx.ExecContext(ctx, `
		UPDATE kaupapa_events
		SET title = $2, description = $3, location = $4,
			date = $5, start_time = $6, end_time = $7,
			updated_at = $8
		WHERE id = $1
	`,
		next.ID,
		next.Title,
		next.Description,
		next.Location,
		next.Date,
		next.StartTime,
		next.EndTime,
		next.UpdatedAt,
	); err != nil {
		return events.Event{}, fmt.Errorf("update event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return events.Event{}, err
	}
	return next, nil
}

func (r *EventsRepo) Delete(ctx context.Context, id, actorID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := lockEvent(ctx, tx, id, actorID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM kaupapa_events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return tx.Commit()
}

func lockEvent(ctx context.Context, tx *sql.Tx, id, actorID string) (events.Event, error) {
	row := tx.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM kaupapa_events WHERE id = $1 FOR UPDATE`, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return events.Event{}, events.ErrNotFound
	}
	if err != nil {
		return events.Event{}, err
	}
	if e.EntityID != actorID {
		return events.Event{}, events.ErrForbidden
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (events.Event, error) {
	var e events.Event
	err := s.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.Date,
		&e.StartTime,
		&e.EndTime,
		&e.EntityID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

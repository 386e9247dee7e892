package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"kaupapa-calendar/internal/domain/entities"
	"kaupapa-calendar/internal/domain/events"
	"kaupapa-calendar/internal/platform/validate"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSeed = errors.New("invalid seed")

// EntitySeed describe una entidad del catálogo.
type EntitySeed struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// EventSeed describe un evento inicial. Se usa Date si viene; si no,
// OffsetDays relativo a hoy (así el demo siempre tiene eventos próximos).
type EventSeed struct {
	EntityID    string `yaml:"entity_id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`
	Date        string `yaml:"date"`
	OffsetDays  *int   `yaml:"offset_days"`
	StartTime   string `yaml:"start_time"`
	EndTime     string `yaml:"end_time"`
}

type Seed struct {
	Entities []EntitySeed `yaml:"entities"`
	Events   []EventSeed  `yaml:"events"`
}

// Load lee y valida un seed YAML.
func Load(path string) (Seed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// Validate exige ids únicos y que cada evento apunte a una entidad conocida.
func (s Seed) Validate() error {
	if len(s.Entities) == 0 {
		return fmt.Errorf("%w: no entities", ErrInvalidSeed)
	}

	known := make(map[string]struct{}, len(s.Entities))
	for i, e := range s.Entities {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return fmt.Errorf("%w: entity #%d has no id", ErrInvalidSeed, i)
		}
		if _, dup := known[id]; dup {
			return fmt.Errorf("%w: duplicate entity %q", ErrInvalidSeed, id)
		}
		known[id] = struct{}{}
	}

	for i, ev := range s.Events {
		if _, ok := known[strings.TrimSpace(ev.EntityID)]; !ok {
			return fmt.Errorf("%w: event #%d references unknown entity %q", ErrInvalidSeed, i, ev.EntityID)
		}
		date := strings.TrimSpace(ev.Date)
		if date == "" && ev.OffsetDays == nil {
			return fmt.Errorf("%w: event #%d needs date or offset_days", ErrInvalidSeed, i)
		}
		if date != "" && !validate.IsDate(date) {
			return fmt.Errorf("%w: event #%d date %q must be YYYY-MM-DD", ErrInvalidSeed, i, ev.Date)
		}
		for _, tm := range []string{ev.StartTime, ev.EndTime} {
			if tm != "" && !validate.IsClock(tm) {
				return fmt.Errorf("%w: event #%d time %q must be HH:mm", ErrInvalidSeed, i, tm)
			}
		}
	}
	return nil
}

// EntityList convierte el seed al modelo del registro, en orden.
func (s Seed) EntityList() []entities.Entity {
	out := make([]entities.Entity, 0, len(s.Entities))
	for _, e := range s.Entities {
		out = append(out, entities.Entity{
			ID:    strings.TrimSpace(e.ID),
			Name:  strings.TrimSpace(e.Name),
			Color: strings.TrimSpace(e.Color),
		})
	}
	return out
}

// ApplyEvents crea los eventos a través del Service, actuando como la entidad
// dueña de cada uno (el store sigue siendo quien asigna id y timestamps).
func (s Seed) ApplyEvents(ctx context.Context, svc *events.Service, today time.Time) ([]events.Event, error) {
	out := make([]events.Event, 0, len(s.Events))
	for _, ev := range s.Events {
		created, err := svc.Create(ctx, ev.EntityID, events.CreateInput{
			Title:       ev.Title,
			Description: ev.Description,
			Location:    ev.Location,
			Date:        ev.resolveDate(today),
			StartTime:   ev.StartTime,
			EndTime:     ev.EndTime,
		})
		if err != nil {
			return out, fmt.Errorf("seed event %q: %w", ev.Title, err)
		}
		out = append(out, created)
	}
	return out, nil
}

func (ev EventSeed) resolveDate(today time.Time) string {
	if d := strings.TrimSpace(ev.Date); d != "" {
		return d
	}
	if ev.OffsetDays == nil {
		return today.Format(validate.DateLayout)
	}
	return today.AddDate(0, 0, *ev.OffsetDays).Format(validate.DateLayout)
}

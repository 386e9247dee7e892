package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "kaupapa-calendar/docs"
	mem "kaupapa-calendar/internal/adapters/storage/memory"
	pg "kaupapa-calendar/internal/adapters/storage/postgres"
	"kaupapa-calendar/internal/domain/entities"
	"kaupapa-calendar/internal/domain/events"
	"kaupapa-calendar/internal/middleware"
	"kaupapa-calendar/internal/platform/logger"
	"kaupapa-calendar/internal/platform/validate"
	"kaupapa-calendar/internal/ports/auth"
	"kaupapa-calendar/internal/seed"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger // nil => Nop

	// Seed con el catálogo de entidades. nil => seed demo embebido.
	Seed *seed.Seed
	// SeedEvents carga también los eventos del seed (solo in-memory).
	SeedEvents bool
	// Today es la referencia para offset_days del seed. Zero => time.Now().
	Today time.Time
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := seed.Default()
	if opts.Seed != nil {
		s = *opts.Seed
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	entitiesSvc, eventsSvc, err := buildServices(opts, s, log)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	v := validate.New()

	// Rutas por módulo
	entities.RegisterRoutes(r, entitiesSvc, log)
	events.RegisterRoutes(r, eventsSvc, entitiesSvc, v, log)

	return r, nil
}

func buildServices(opts Options, s seed.Seed, log logger.Logger) (*entities.Service, *events.Service, error) {
	ctx := context.Background()

	if opts.DB != nil {
		if err := pg.EnsureSchema(ctx, opts.DB); err != nil {
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		if err := pg.SeedEntities(ctx, opts.DB, s.EntityList()); err != nil {
			return nil, nil, fmt.Errorf("seed entities: %w", err)
		}
		log.Info("storage: postgres", nil)
		return entities.NewService(pg.NewEntitiesRepo(opts.DB)), events.NewService(pg.NewEventsRepo(opts.DB)), nil
	}

	entitiesSvc := entities.NewService(mem.NewEntityRepo(s.EntityList()))
	eventsSvc := events.NewService(mem.NewEventRepo())

	if opts.SeedEvents {
		today := opts.Today
		if today.IsZero() {
			today = time.Now()
		}
		created, err := s.ApplyEvents(ctx, eventsSvc, today)
		if err != nil {
			return nil, nil, err
		}
		log.Info("seed: demo events loaded", map[string]any{"count": len(created)})
	}

	log.Info("storage: memory", map[string]any{"entities": len(s.Entities)})
	return entitiesSvc, eventsSvc, nil
}

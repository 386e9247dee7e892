package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"kaupapa-calendar/internal/adapters/storage/postgres"
	"kaupapa-calendar/internal/domain/entities"
	"kaupapa-calendar/internal/domain/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integración contra un Postgres real; sin TEST_DB_DSN se saltea.
func openTestDB(t *testing.T) *postgres.EventsRepo {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := postgres.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, postgres.EnsureSchema(ctx, db))
	require.NoError(t, postgres.SeedEntities(ctx, db, []entities.Entity{
		{ID: "kp-1", Name: "Te Whānau Aroha", Color: "#E07B54"},
		{ID: "kp-2", Name: "Ngā Tamariki Trust", Color: "#04B09E"},
	}))

	ents, err := postgres.NewEntitiesRepo(db).GetByID(ctx, "kp-2")
	require.NoError(t, err)
	require.Equal(t, "Ngā Tamariki Trust", ents.Name)

	return postgres.NewEventsRepo(db)
}

func TestEventsRepo_OwnershipAndCRUD(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	e := events.Event{
		ID:        uuid.NewString(),
		Title:     "Whānau Hui",
		Date:      "2099-03-14",
		StartTime: "10:00",
		EndTime:   "12:00",
		EntityID:  "kp-1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, e))
	t.Cleanup(func() { _ = repo.Delete(ctx, e.ID, "kp-1") })

	_, err := repo.Update(ctx, e.ID, "kp-2", func(ev *events.Event) { ev.Title = "hijack" })
	assert.ErrorIs(t, err, events.ErrForbidden)
	assert.ErrorIs(t, repo.Delete(ctx, e.ID, "kp-2"), events.ErrForbidden)

	updated, err := repo.Update(ctx, e.ID, "kp-1", func(ev *events.Event) {
		ev.StartTime = ""
		ev.EntityID = "kp-2"
	})
	require.NoError(t, err)
	assert.Equal(t, "kp-1", updated.EntityID)
	assert.Empty(t, updated.StartTime)

	onDate, err := repo.List(ctx, events.ListFilter{Date: "2099-03-14"})
	require.NoError(t, err)
	found := false
	for _, ev := range onDate {
		if ev.ID == e.ID {
			found = true
		}
	}
	assert.True(t, found)

	require.NoError(t, repo.Delete(ctx, e.ID, "kp-1"))
	_, err = repo.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, events.ErrNotFound)
}

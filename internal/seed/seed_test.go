package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kaupapa-calendar/internal/adapters/storage/memory"
	"kaupapa-calendar/internal/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesDemoCatalog(t *testing.T) {
	s := Default()

	ents := s.EntityList()
	require.Len(t, ents, 4)
	assert.Equal(t, "kp-1", ents[0].ID)
	assert.Equal(t, "Te Whānau Aroha", ents[0].Name)
	assert.Equal(t, "#E07B54", ents[0].Color)
	assert.Equal(t, "kp-4", ents[3].ID)

	assert.Len(t, s.Events, 7)
}

func TestApplyEvents_ResolvesOffsetsAndOwners(t *testing.T) {
	ctx := context.Background()
	svc := events.NewService(memory.NewEventRepo())
	today := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	created, err := Default().ApplyEvents(ctx, svc, today)
	require.NoError(t, err)
	require.Len(t, created, 7)

	assert.Equal(t, "Whānau Hui", created[0].Title)
	assert.Equal(t, "2026-03-14", created[0].Date)
	assert.Equal(t, "kp-1", created[0].EntityID)
	assert.Equal(t, "2026-03-25", created[2].Date)

	// El demo está armado para que Whānau Hui choque con Tamariki Day Out.
	clashes, err := svc.Clashes(ctx, "kp-1", events.ClashQuery{
		Date:           created[0].Date,
		StartTime:      created[0].StartTime,
		EndTime:        created[0].EndTime,
		ExcludeEventID: created[0].ID,
	})
	require.NoError(t, err)
	require.Len(t, clashes, 1)
	assert.Equal(t, "Tamariki Day Out", clashes[0].Title)
}

func TestParse_ExplicitDateWins(t *testing.T) {
	s, err := Parse([]byte(`
entities:
  - id: a
    name: A
events:
  - entity_id: a
    title: fixed
    date: "2026-12-25"
    offset_days: 1
`))
	require.NoError(t, err)

	svc := events.NewService(memory.NewEventRepo())
	created, err := s.ApplyEvents(context.Background(), svc, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2026-12-25", created[0].Date)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"no_entities":      "events: []",
		"duplicate_entity": "entities: [{id: a}, {id: a}]",
		"unknown_owner":    "entities: [{id: a}]\nevents: [{entity_id: b, title: x, date: '2026-01-01'}]",
		"no_date":          "entities: [{id: a}]\nevents: [{entity_id: a, title: x}]",
		"not_yaml":         "entities: [",
		"bad_date":         "entities: [{id: a}]\nevents: [{entity_id: a, title: x, date: '2026-3-1'}]",
		"bad_time":         "entities: [{id: a}]\nevents: [{entity_id: a, title: x, date: '2026-03-01', start_time: '9am'}]",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestApplyEvents_UnvalidatedSeedWithoutDateUsesToday(t *testing.T) {
	s := Seed{
		Entities: []EntitySeed{{ID: "a"}},
		Events:   []EventSeed{{EntityID: "a", Title: "x"}},
	}
	assert.ErrorIs(t, s.Validate(), ErrInvalidSeed)

	svc := events.NewService(memory.NewEventRepo())
	created, err := s.ApplyEvents(context.Background(), svc, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2026-03-11", created[0].Date)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entities: [{id: kp-1, name: Aroha, color: '#fff'}]\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Aroha", s.EntityList()[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory, sin locks)
// -------------------------

type testRepo struct {
	byID  map[string]Event
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Event{}}
}

func (r *testRepo) Create(ctx context.Context, e Event) error {
	if e.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[e.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Event, error) {
	out := make([]Event, 0)
	for _, id := range r.order {
		e := r.byID[id]
		if filter.Date != "" && e.Date != filter.Date {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, id, actorID string, mutate func(*Event)) (Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	if e.EntityID != actorID {
		return Event{}, ErrForbidden
	}
	mutate(&e)
	r.byID[id] = e
	return e, nil
}

func (r *testRepo) Delete(ctx context.Context, id, actorID string) error {
	e, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if e.EntityID != actorID {
		return ErrForbidden
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// -------------------------
// Helpers
// -------------------------

var t0 = time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo, *time.Time) {
	repo := newTestRepo()
	svc := NewService(repo)
	now := t0
	svc.now = func() time.Time { return now }
	return svc, repo, &now
}

func create(t *testing.T, svc *Service, actor, title, date, start, end string) Event {
	t.Helper()
	e, err := svc.Create(context.Background(), actor, CreateInput{
		Title:     title,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	})
	require.NoError(t, err)
	return e
}

func titles(in []Event) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		out = append(out, e.Title)
	}
	return out
}

func strPtr(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Create_AssignsOwnerIDAndTimestamps(t *testing.T) {
	svc, _, _ := newTestService()

	e := create(t, svc, "kp-1", "Whānau Hui", "2026-03-14", "10:00", "12:00")

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "kp-1", e.EntityID)
	assert.Equal(t, t0, e.CreatedAt)
	assert.Equal(t, t0, e.UpdatedAt)

	stored, err := svc.GetByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, stored)
}

func TestService_Create_UniqueIDs(t *testing.T) {
	svc, _, _ := newTestService()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		e := create(t, svc, "kp-1", "x", "2026-03-14", "", "")
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestService_Create_RequiresActor(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), "  ", CreateInput{Title: "x", Date: "2026-03-14"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_OwnerNeverChangesWhenActorSwitches(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	e := create(t, svc, "kp-1", "Hui", "2026-03-14", "", "")

	// kp-2 actúa ahora: no puede tocarlo y el dueño sigue siendo kp-1.
	_, err := svc.Update(ctx, "kp-2", e.ID, Patch{Title: strPtr("mine now")})
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "kp-1", got.EntityID)

	mine, err := svc.ListMine(ctx, "kp-2")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestService_Update_MergesPatchAndRefreshesUpdatedAt(t *testing.T) {
	svc, _, now := newTestService()
	ctx := context.Background()

	e := create(t, svc, "kp-1", "Hui", "2026-03-14", "10:00", "12:00")

	*now = t0.Add(time.Hour)
	updated, err := svc.Update(ctx, "kp-1", e.ID, Patch{
		Title:     strPtr("Whānau Hui"),
		StartTime: strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "Whānau Hui", updated.Title)
	assert.Equal(t, "", updated.StartTime)
	assert.Equal(t, "12:00", updated.EndTime)
	assert.Equal(t, "2026-03-14", updated.Date)
	assert.Equal(t, t0, updated.CreatedAt)
	assert.Equal(t, t0.Add(time.Hour), updated.UpdatedAt)
	assert.Equal(t, "kp-1", updated.EntityID)
}

func TestService_Update_ForeignOrMissingLeavesStoreUnchanged(t *testing.T) {
	svc, repo, now := newTestService()
	ctx := context.Background()

	e := create(t, svc, "kp-2", "Tamariki Day Out", "2026-03-14", "09:00", "15:00")
	before, _ := repo.List(ctx, ListFilter{})

	*now = t0.Add(time.Hour)
	_, err := svc.Update(ctx, "kp-1", e.ID, Patch{Title: strPtr("nope")})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(ctx, "kp-1", "missing", Patch{Title: strPtr("nope")})
	assert.ErrorIs(t, err, ErrNotFound)

	after, _ := repo.List(ctx, ListFilter{})
	assert.Equal(t, before, after)
}

func TestService_Delete(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	mine := create(t, svc, "kp-1", "Hui", "2026-03-14", "", "")
	theirs := create(t, svc, "kp-2", "Day Out", "2026-03-14", "", "")

	assert.ErrorIs(t, svc.Delete(ctx, "kp-1", "missing"), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "kp-1", theirs.ID), ErrForbidden)
	assert.Len(t, repo.byID, 2)

	require.NoError(t, svc.Delete(ctx, "kp-1", mine.ID))
	assert.Len(t, repo.byID, 1)

	_, err := svc.GetByID(ctx, mine.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Lists(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	create(t, svc, "kp-1", "mine-late", "2026-03-20", "", "")
	create(t, svc, "kp-2", "kp2", "2026-03-14", "", "")
	create(t, svc, "kp-1", "mine-early", "2026-03-12", "", "")
	create(t, svc, "kp-3", "kp3", "2026-03-14", "", "")
	create(t, svc, "kp-4", "kp4", "2026-03-01", "", "")

	mine, err := svc.ListMine(ctx, "kp-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"mine-early", "mine-late"}, titles(mine))

	others, err := svc.ListOthers(ctx, "kp-1", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"kp4", "kp2", "kp3"}, titles(others))

	// filtro vacío = sin restricción
	othersEmpty, err := svc.ListOthers(ctx, "kp-1", []string{})
	require.NoError(t, err)
	assert.Equal(t, titles(others), titles(othersEmpty))

	filtered, err := svc.ListOthers(ctx, "kp-1", []string{"kp-3", "kp-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"kp3"}, titles(filtered))

	all, err := svc.ListAll(ctx, "kp-1", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"kp4", "mine-early", "kp2", "kp3", "mine-late"}, titles(all))

	// los propios siempre entran, aunque el filtro no los nombre
	allFiltered, err := svc.ListAll(ctx, "kp-1", []string{"kp-2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mine-early", "kp2", "mine-late"}, titles(allFiltered))

	onDate, err := svc.ListOnDate(ctx, "kp-1", "2026-03-14", []string{"kp-3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"kp3"}, titles(onDate))
}

func TestService_MineUnionOthersEqualsAll(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for i, actor := range []string{"kp-1", "kp-2", "kp-1", "kp-3", "kp-4", "kp-2"} {
		create(t, svc, actor, actor, time.Date(2026, 3, 1+i%3, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), "", "")
	}

	for _, actor := range []string{"kp-1", "kp-2", "kp-9"} {
		mine, _ := svc.ListMine(ctx, actor)
		others, _ := svc.ListOthers(ctx, actor, nil)
		all, _ := svc.ListAll(ctx, actor, nil)

		union := map[string]int{}
		for _, e := range append(mine, others...) {
			union[e.ID]++
		}
		assert.Len(t, union, len(all), actor)
		for _, e := range all {
			assert.Equal(t, 1, union[e.ID], "actor %s id %s", actor, e.ID)
		}
	}
}

func TestService_Clashes(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	mine := create(t, svc, "kp-1", "Whānau Hui", "2026-03-14", "10:00", "12:00")
	dayOut := create(t, svc, "kp-2", "Tamariki Day Out", "2026-03-14", "09:00", "15:00")
	create(t, svc, "kp-3", "Morning only", "2026-03-14", "07:00", "10:00")
	create(t, svc, "kp-4", "Other day", "2026-03-15", "10:00", "12:00")

	got, err := svc.Clashes(ctx, "kp-1", ClashQuery{Date: "2026-03-14", StartTime: "10:00", EndTime: "12:00", ExcludeEventID: mine.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tamariki Day Out"}, titles(got))

	got, err = svc.Clashes(ctx, "kp-1", ClashQuery{Date: "2026-03-14", StartTime: "10:00", EndTime: "12:00", ExcludeEventID: dayOut.ID})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.Clashes(ctx, "kp-1", ClashQuery{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_ClearedStartTimeBecomesAllDayClash(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	create(t, svc, "kp-2", "Kapa haka", "2026-03-14", "18:00", "20:00")
	mine := create(t, svc, "kp-1", "Hui", "2026-03-14", "08:00", "09:00")

	before, err := svc.Clashes(ctx, "kp-1", ClashQuery{Date: mine.Date, StartTime: mine.StartTime, EndTime: mine.EndTime, ExcludeEventID: mine.ID})
	require.NoError(t, err)
	assert.Empty(t, before)

	updated, err := svc.Update(ctx, "kp-1", mine.ID, Patch{StartTime: strPtr(""), EndTime: strPtr("")})
	require.NoError(t, err)
	assert.True(t, updated.AllDay())
	assert.Empty(t, updated.EndTime)
	assert.Equal(t, "Hui", updated.Title)

	after, err := svc.Clashes(ctx, "kp-1", ClashQuery{Date: updated.Date, StartTime: updated.StartTime, EndTime: updated.EndTime, ExcludeEventID: updated.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Kapa haka"}, titles(after))
}

func TestService_StatsAt(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	create(t, svc, "kp-1", "past", "2026-03-01", "", "")
	create(t, svc, "kp-1", "today", "2026-03-11", "", "")
	create(t, svc, "kp-1", "sunday", "2026-03-15", "", "")
	create(t, svc, "kp-1", "later", "2026-04-01", "", "")
	create(t, svc, "kp-2", "not mine", "2026-03-12", "", "")

	got, err := svc.StatsAt(ctx, "kp-1", time.Date(2026, 3, 11, 18, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, Stats{Upcoming: 3, ThisWeek: 2, Past: 1}, got)

	viaClock, err := svc.Stats(ctx, "kp-1")
	require.NoError(t, err)
	assert.Equal(t, got, viaClock)
}

package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisafe-companion/internal/ports/storage"
)

var base = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func persisted(id int64, minutes int) Notification {
	return Notification{
		ID:        id,
		Source:    SourceAI,
		Title:     "n",
		Category:  CategoryInfo,
		Timestamp: base.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestIDSource_StrictlyIncreasing(t *testing.T) {
	ids := NewIDSource(func() time.Time { return base })

	a := ids.Next()
	b := ids.Next()
	c := ids.Next()

	assert.Equal(t, base.UnixMilli(), a)
	assert.Equal(t, a+1, b)
	assert.Equal(t, b+1, c)
}

func TestFeed_MergeOverlappingBatchesNeverDuplicates(t *testing.T) {
	f := NewFeed(nil, 0)

	f.Merge([]Notification{persisted(1, 1), persisted(2, 2), persisted(3, 3)})
	f.Merge([]Notification{persisted(2, 2), persisted(3, 3), persisted(4, 4)})
	f.Merge([]Notification{persisted(4, 4), persisted(1, 1)})

	items := f.Snapshot()
	require.Len(t, items, 4)

	seen := map[int64]bool{}
	for _, n := range items {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}

	// más nuevas primero
	assert.Equal(t, int64(4), items[0].ID)
	assert.Equal(t, int64(1), items[3].ID)
}

func TestFeed_SchedulerAndPersistedIdsDoNotCollide(t *testing.T) {
	now := base.Add(10 * time.Minute)
	f := NewFeed(NewIDSource(func() time.Time { return now }), 0)

	eph := f.Push(Notification{Title: "Medication Reminder", Category: CategoryInfo, Timestamp: now})
	// un id persistido igual al efímero no lo pisa
	f.Merge([]Notification{{ID: eph.ID, Source: SourceAI, Title: "ai", Category: CategoryInfo, Timestamp: base}})

	items := f.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, SourceScheduler, items[0].Source)
	assert.Equal(t, SourceAI, items[1].Source)
}

func TestFeed_AckSurvivesRemerge(t *testing.T) {
	f := NewFeed(nil, 0)
	f.Merge([]Notification{persisted(7, 1)})

	require.True(t, f.Ack(SourceAI, 7))
	f.Merge([]Notification{persisted(7, 1)})

	assert.True(t, f.Snapshot()[0].Read)
	assert.False(t, f.Ack(SourceScheduler, 7))
}

func TestFeed_CapacityDropsOldest(t *testing.T) {
	f := NewFeed(nil, 2)
	f.Merge([]Notification{persisted(1, 1), persisted(2, 2), persisted(3, 3)})

	items := f.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
}

type testRepo struct {
	items []Notification
}

func (r *testRepo) Create(ctx context.Context, n Notification) (int64, error) {
	n.ID = int64(len(r.items) + 1)
	r.items = append(r.items, n)
	return n.ID, nil
}

func (r *testRepo) ListLatest(ctx context.Context, limit int) ([]Notification, error) {
	out := []Notification{}
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}

func (r *testRepo) MarkRead(ctx context.Context, id int64) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Read = true
			return nil
		}
	}
	return storage.ErrNotFound
}

func TestService_CreateValidatesCategory(t *testing.T) {
	svc := NewService(&testRepo{}, NewFeed(nil, 0))
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateInput{Title: "Hydrate", Body: "Drink water"})
	require.NoError(t, err)
	assert.Equal(t, CategoryInfo, n.Category)

	_, err = svc.Create(ctx, CreateInput{Title: "x", Category: "alarm"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.Create(ctx, CreateInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_LatestCapsAtTwenty(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil)
	for i := 0; i < 25; i++ {
		_, err := svc.Create(context.Background(), CreateInput{Title: "n"})
		require.NoError(t, err)
	}

	items, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.Len(t, items, LatestLimit)
	assert.Equal(t, int64(25), items[0].ID)
}

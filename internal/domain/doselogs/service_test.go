package doselogs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisafe-companion/internal/platform/logger"
)

type testRepo struct {
	items []Entry
}

func (r *testRepo) Create(ctx context.Context, e Entry) (int64, error) {
	e.ID = int64(len(r.items) + 1)
	r.items = append(r.items, e)
	return e.ID, nil
}

func (r *testRepo) List(ctx context.Context, limit int) ([]EntryView, error) {
	out := make([]EntryView, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		out = append(out, EntryView{Entry: r.items[i]})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type recordingObserver struct {
	got []Entry
	err error
}

func (o *recordingObserver) OnDoseLogged(ctx context.Context, e Entry) error {
	o.got = append(o.got, e)
	return o.err
}

var fixedNow = time.Date(2026, 3, 1, 8, 5, 0, 0, time.UTC)

func TestCreate_ValidatesStatus(t *testing.T) {
	svc := NewService(&testRepo{}, logger.Nop())

	_, err := svc.Create(context.Background(), CreateInput{Status: "skipped"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	bad := int64(0)
	_, err = svc.Create(context.Background(), CreateInput{MedicationID: &bad, Status: StatusTaken})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DefaultsMoodAndNotifiesObservers(t *testing.T) {
	failing := &recordingObserver{err: errors.New("minhealth down")}
	ok := &recordingObserver{}

	svc := NewService(&testRepo{}, logger.Nop(), failing)
	svc.AddObserver(ok)
	svc.now = func() time.Time { return fixedNow }

	medID := int64(7)
	e, err := svc.Create(context.Background(), CreateInput{MedicationID: &medID, Status: " TAKEN "})
	require.NoError(t, err)

	assert.Equal(t, int64(1), e.ID)
	assert.Equal(t, StatusTaken, e.Status)
	assert.Equal(t, DefaultMood, e.Mood)
	assert.Equal(t, fixedNow, e.Timestamp)

	// El observer que falla no impide notificar al siguiente.
	require.Len(t, failing.got, 1)
	require.Len(t, ok.got, 1)
	assert.Equal(t, int64(7), *ok.got[0].MedicationID)
}

func TestCompareAdherence(t *testing.T) {
	yesterday := fixedNow.Add(-24 * time.Hour)

	entry := func(ts time.Time, st Status) EntryView {
		return EntryView{Entry: Entry{Status: st, Timestamp: ts}}
	}

	t.Run("not enough data", func(t *testing.T) {
		a := CompareAdherence([]EntryView{entry(fixedNow, StatusTaken)}, fixedNow)
		assert.Equal(t, "Not enough data to compare.", a.Message)
	})

	t.Run("up", func(t *testing.T) {
		a := CompareAdherence([]EntryView{
			entry(fixedNow, StatusTaken),
			entry(yesterday, StatusTaken),
			entry(yesterday, StatusMissed),
		}, fixedNow)
		assert.InDelta(t, 100, a.TodayPercent, 0.001)
		assert.InDelta(t, 50, a.PastPercent, 0.001)
		assert.Contains(t, a.Message, "up by 50%")
	})

	t.Run("down", func(t *testing.T) {
		a := CompareAdherence([]EntryView{
			entry(fixedNow, StatusMissed),
			entry(yesterday, StatusTaken),
		}, fixedNow)
		assert.Contains(t, a.Message, "down by 100%")
	})

	t.Run("stable inside band", func(t *testing.T) {
		a := CompareAdherence([]EntryView{
			entry(fixedNow, StatusTaken),
			entry(yesterday, StatusTaken),
		}, fixedNow)
		assert.Contains(t, a.Message, "stable")
	})
}

package medbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/platform/logger"
	"medisafe-companion/internal/ports/storage"
)

type testRepo struct {
	m *MedBox
}

func (r *testRepo) Get(ctx context.Context) (MedBox, error) {
	if r.m == nil {
		return MedBox{}, storage.ErrNotFound
	}
	return *r.m, nil
}

func (r *testRepo) Create(ctx context.Context, m MedBox) (int64, error) {
	m.ID = 1
	r.m = &m
	return 1, nil
}

func (r *testRepo) Update(ctx context.Context, m MedBox) error {
	r.m = &m
	return nil
}

type recordingNotifier struct {
	got []notifications.CreateInput
}

func (n *recordingNotifier) Create(ctx context.Context, in notifications.CreateInput) (notifications.Notification, error) {
	n.got = append(n.got, in)
	return notifications.Notification{ID: int64(len(n.got))}, nil
}

func TestGet_DefaultWeight(t *testing.T) {
	svc := NewService(&testRepo{}, nil, logger.Nop())

	m, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 500.0, m.CurrentWeightGrams)
	assert.Equal(t, StatusConnected, m.Status)
}

func TestRecordWeight_ShiftsAndNotifiesOnDrop(t *testing.T) {
	n := &recordingNotifier{}
	svc := NewService(&testRepo{}, n, logger.Nop())
	ctx := context.Background()

	// 5 g exactos no alcanzan
	m, err := svc.RecordWeight(ctx, 495, "api")
	require.NoError(t, err)
	assert.Equal(t, 500.0, m.LastWeightGrams)
	assert.Equal(t, 495.0, m.CurrentWeightGrams)
	assert.Empty(t, n.got)

	_, err = svc.RecordWeight(ctx, 489.5, "api")
	require.NoError(t, err)
	require.Len(t, n.got, 1)
	assert.Equal(t, "MedBox Weight Change", n.got[0].Title)
	assert.Equal(t, "Detected weight change: 489.5g. Verifying dose...", n.got[0].Body)
	assert.Equal(t, notifications.CategoryInfo, n.got[0].Category)

	// subir de peso (rellenar) no notifica
	_, err = svc.RecordWeight(ctx, 520, "api")
	require.NoError(t, err)
	assert.Len(t, n.got, 1)
}

func TestRecordWeight_RejectsNegative(t *testing.T) {
	svc := NewService(&testRepo{}, nil, logger.Nop())

	_, err := svc.RecordWeight(context.Background(), -1, "api")
	assert.ErrorIs(t, err, ErrInvalidWeight)
}

func TestSimulator_Tick(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil, logger.Nop())
	sim := NewSimulator(svc, logger.Nop())

	sim.rnd = func() float64 { return 0.5 }
	assert.False(t, sim.Tick(context.Background()))

	sim.rnd = func() float64 { return 0.01 }
	require.True(t, sim.Tick(context.Background()))
	assert.Equal(t, 495.0, repo.m.CurrentWeightGrams)
	assert.Equal(t, 500.0, repo.m.LastWeightGrams)
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/domain/settings"
	"medisafe-companion/internal/ports/storage"
)

func TestDoseLogRepo_JoinsNameAndFlagsOrphans(t *testing.T) {
	ctx := context.Background()
	meds := NewMedicationRepo()
	logs := NewDoseLogRepo(meds)

	keep, err := meds.Create(ctx, medications.Medication{Name: "Metformin", Time: "08:00"})
	require.NoError(t, err)
	gone, err := meds.Create(ctx, medications.Medication{Name: "Aspirin", Time: "20:00"})
	require.NoError(t, err)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	_, err = logs.Create(ctx, doselogs.Entry{MedicationID: &keep, Status: doselogs.StatusTaken, Timestamp: base})
	require.NoError(t, err)
	_, err = logs.Create(ctx, doselogs.Entry{MedicationID: &gone, Status: doselogs.StatusMissed, Timestamp: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = logs.Create(ctx, doselogs.Entry{Status: doselogs.StatusTaken, Timestamp: base.Add(2 * time.Hour)})
	require.NoError(t, err)

	require.NoError(t, meds.Delete(ctx, gone))
	assert.ErrorIs(t, meds.Delete(ctx, gone), storage.ErrNotFound)

	items, err := logs.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// más nuevo primero
	assert.Nil(t, items[0].MedicationID)
	assert.False(t, items[0].Orphaned)

	assert.True(t, items[1].Orphaned)
	assert.Empty(t, items[1].MedicationName)

	assert.Equal(t, "Metformin", items[2].MedicationName)
	assert.False(t, items[2].Orphaned)

	limited, err := logs.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSingletons(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepo()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, settings.Defaults()), storage.ErrNotFound)

	_, err = repo.Create(ctx, settings.Defaults())
	require.NoError(t, err)

	// un segundo create no pisa la fila
	other := settings.Defaults()
	other.MedBoxID = "MB-0001"
	_, err = repo.Create(ctx, other)
	require.NoError(t, err)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "MB-7892", got.MedBoxID)
}

func TestNotificationRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepo()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, notifications.Notification{Title: "n", Category: notifications.CategoryInfo, Timestamp: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}
	require.NoError(t, repo.MarkRead(ctx, 2))
	assert.ErrorIs(t, repo.MarkRead(ctx, 9), storage.ErrNotFound)

	items, err := repo.ListLatest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].ID)
	assert.True(t, items[1].Read)
}

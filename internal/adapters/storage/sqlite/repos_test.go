package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/medbox"
	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/domain/profile"
	"medisafe-companion/internal/domain/settings"
	"medisafe-companion/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dir := t.TempDir()
	db, err := Open(filepath.Join(dir, "nested", "medisafe.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_CreatesFileWithPrivatePermissions(t *testing.T) {
	db := setupTestDB(t)

	info, err := os.Stat(db.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Migrate es idempotente
	require.NoError(t, db.Migrate(context.Background()))
}

func TestMedicationsAndDoseLogs(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	meds := NewMedicationRepo(db)
	logs := NewDoseLogRepo(db)

	created := time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)
	keep, err := meds.Create(ctx, medications.Medication{Name: "Metformin", Dosage: "500mg", Frequency: "Daily", Time: "08:00", CreatedAt: created})
	require.NoError(t, err)
	gone, err := meds.Create(ctx, medications.Medication{Name: "Aspirin", Frequency: "Daily", Time: "20:00", CreatedAt: created})
	require.NoError(t, err)

	got, err := meds.GetByID(ctx, keep)
	require.NoError(t, err)
	assert.Equal(t, "Metformin", got.Name)
	assert.True(t, got.CreatedAt.Equal(created))

	_, err = meds.GetByID(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i, e := range []doselogs.Entry{
		{MedicationID: &keep, Status: doselogs.StatusTaken, Mood: "Normal", Timestamp: base},
		{MedicationID: &gone, Status: doselogs.StatusMissed, Mood: "Normal", Timestamp: base.Add(time.Hour)},
		{Status: doselogs.StatusTaken, Mood: "Pain", Notes: "general", Timestamp: base.Add(2 * time.Hour)},
	} {
		id, err := logs.Create(ctx, e)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}

	require.NoError(t, meds.Delete(ctx, gone))
	assert.ErrorIs(t, meds.Delete(ctx, gone), storage.ErrNotFound)

	list, err := meds.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	items, err := logs.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Nil(t, items[0].MedicationID)
	assert.False(t, items[0].Orphaned)
	assert.Equal(t, "general", items[0].Notes)

	require.NotNil(t, items[1].MedicationID)
	assert.Equal(t, gone, *items[1].MedicationID)
	assert.True(t, items[1].Orphaned)
	assert.Empty(t, items[1].MedicationName)

	assert.Equal(t, "Metformin", items[2].MedicationName)
	assert.Equal(t, doselogs.StatusTaken, items[2].Status)
	assert.True(t, items[2].Timestamp.Equal(base))

	limited, err := logs.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSingletons(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	pr := NewProfileRepo(db)
	_, err := pr.Get(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = pr.Create(ctx, profile.Profile{Name: "Patient", Condition: "Chronic Condition"})
	require.NoError(t, err)
	_, err = pr.Create(ctx, profile.Profile{Name: "Other"})
	require.NoError(t, err)
	require.NoError(t, pr.Update(ctx, profile.Profile{Name: "Ana", Condition: "Asthma", DoctorNotes: "x"}))

	p, err := pr.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile.Profile{ID: 1, Name: "Ana", Condition: "Asthma", DoctorNotes: "x"}, p)

	mr := NewMedBoxRepo(db)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err = mr.Create(ctx, medbox.MedBox{CurrentWeightGrams: 500, LastWeightGrams: 500, Status: "Connected", LastUpdated: now})
	require.NoError(t, err)
	require.NoError(t, mr.Update(ctx, medbox.MedBox{CurrentWeightGrams: 495, LastWeightGrams: 500, Status: "Connected", LastUpdated: now.Add(time.Minute)}))
	m, err := mr.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 495.0, m.CurrentWeightGrams)
	assert.True(t, m.LastUpdated.Equal(now.Add(time.Minute)))

	sr := NewSettingsRepo(db)
	assert.ErrorIs(t, sr.Update(ctx, settings.Defaults()), storage.ErrNotFound)
	_, err = sr.Create(ctx, settings.Defaults())
	require.NoError(t, err)
	s, err := sr.Get(ctx)
	require.NoError(t, err)
	assert.True(t, s.NotificationsEnabled)
	assert.False(t, s.MinHealthSyncEnabled)
	assert.Equal(t, 15, s.SnoozeDurationMinutes)
}

func TestNotifications(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewNotificationRepo(db)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		_, err := repo.Create(ctx, notifications.Notification{
			Title:     "n",
			Body:      "b",
			Category:  notifications.CategoryRecommendation,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	require.NoError(t, repo.MarkRead(ctx, 25))
	assert.ErrorIs(t, repo.MarkRead(ctx, 99), storage.ErrNotFound)

	items, err := repo.ListLatest(ctx, notifications.LatestLimit)
	require.NoError(t, err)
	require.Len(t, items, 20)
	assert.Equal(t, int64(25), items[0].ID)
	assert.True(t, items[0].Read)
	assert.Equal(t, notifications.SourceAI, items[0].Source)
	assert.Equal(t, int64(6), items[19].ID)
}

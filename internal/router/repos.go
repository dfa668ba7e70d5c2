package router

import (
	"database/sql"

	mem "medisafe-companion/internal/adapters/storage/memory"
	pg "medisafe-companion/internal/adapters/storage/postgres"
	"medisafe-companion/internal/adapters/storage/sqlite"
	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/medbox"
	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/domain/profile"
	"medisafe-companion/internal/domain/settings"
)

// Repos agrupa los repositorios de un backend.
type Repos struct {
	Medications   medications.Repository
	DoseLogs      doselogs.Repository
	Profile       profile.Repository
	MedBox        medbox.Repository
	Notifications notifications.Repository
	Settings      settings.Repository
}

func MemoryRepos() Repos {
	meds := mem.NewMedicationRepo()
	return Repos{
		Medications:   meds,
		DoseLogs:      mem.NewDoseLogRepo(meds),
		Profile:       mem.NewProfileRepo(),
		MedBox:        mem.NewMedBoxRepo(),
		Notifications: mem.NewNotificationRepo(),
		Settings:      mem.NewSettingsRepo(),
	}
}

func SQLiteRepos(db *sqlite.DB) Repos {
	return Repos{
		Medications:   sqlite.NewMedicationRepo(db),
		DoseLogs:      sqlite.NewDoseLogRepo(db),
		Profile:       sqlite.NewProfileRepo(db),
		MedBox:        sqlite.NewMedBoxRepo(db),
		Notifications: sqlite.NewNotificationRepo(db),
		Settings:      sqlite.NewSettingsRepo(db),
	}
}

func PostgresRepos(db *sql.DB) Repos {
	return Repos{
		Medications:   pg.NewMedicationRepo(db),
		DoseLogs:      pg.NewDoseLogRepo(db),
		Profile:       pg.NewProfileRepo(db),
		MedBox:        pg.NewMedBoxRepo(db),
		Notifications: pg.NewNotificationRepo(db),
		Settings:      pg.NewSettingsRepo(db),
	}
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"medisafe-companion/internal/domain/medbox"
	"medisafe-companion/internal/domain/profile"
	"medisafe-companion/internal/domain/settings"
)

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context) (profile.Profile, error) {
	var p profile.Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, condition, doctor_notes FROM profile WHERE id = 1
	`).Scan(&p.ID, &p.Name, &p.Condition, &p.DoctorNotes)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.Profile{}, ErrNotFound
	}
	return p, err
}

func (r *ProfileRepo) Create(ctx context.Context, p profile.Profile) (int64, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profile (id, name, condition, doctor_notes)
		VALUES (1,$1,$2,$3)
		ON CONFLICT (id) DO NOTHING
	`, p.Name, p.Condition, p.DoctorNotes)
	return 1, err
}

func (r *ProfileRepo) Update(ctx context.Context, p profile.Profile) error {
	return execOne(ctx, r.db, `
		UPDATE profile SET name = $1, condition = $2, doctor_notes = $3 WHERE id = 1
	`, p.Name, p.Condition, p.DoctorNotes)
}

type MedBoxRepo struct {
	db *sql.DB
}

func NewMedBoxRepo(db *sql.DB) *MedBoxRepo {
	return &MedBoxRepo{db: db}
}

func (r *MedBoxRepo) Get(ctx context.Context) (medbox.MedBox, error) {
	var m medbox.MedBox
	err := r.db.QueryRowContext(ctx, `
		SELECT id, current_weight_grams, last_weight_grams, status, last_updated FROM medbox WHERE id = 1
	`).Scan(&m.ID, &m.CurrentWeightGrams, &m.LastWeightGrams, &m.Status, &m.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return medbox.MedBox{}, ErrNotFound
	}
	return m, err
}

func (r *MedBoxRepo) Create(ctx context.Context, m medbox.MedBox) (int64, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medbox (id, current_weight_grams, last_weight_grams, status, last_updated)
		VALUES (1,$1,$2,$3,$4)
		ON CONFLICT (id) DO NOTHING
	`, m.CurrentWeightGrams, m.LastWeightGrams, m.Status, m.LastUpdated)
	return 1, err
}

func (r *MedBoxRepo) Update(ctx context.Context, m medbox.MedBox) error {
	return execOne(ctx, r.db, `
		UPDATE medbox
		SET current_weight_grams = $1, last_weight_grams = $2, status = $3, last_updated = $4
		WHERE id = 1
	`, m.CurrentWeightGrams, m.LastWeightGrams, m.Status, m.LastUpdated)
}

type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	var s settings.Settings
	err := r.db.QueryRowContext(ctx, `
		SELECT
			id, medbox_id, snooze_duration_minutes,
			notifications_enabled, voice_agent_enabled,
			distress_monitor_enabled, minhealth_sync_enabled
		FROM settings WHERE id = 1
	`).Scan(
		&s.ID,
		&s.MedBoxID,
		&s.SnoozeDurationMinutes,
		&s.NotificationsEnabled,
		&s.VoiceAgentEnabled,
		&s.DistressMonitorEnabled,
		&s.MinHealthSyncEnabled,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return settings.Settings{}, ErrNotFound
	}
	return s, err
}

func (r *SettingsRepo) Create(ctx context.Context, s settings.Settings) (int64, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (
			id, medbox_id, snooze_duration_minutes,
			notifications_enabled, voice_agent_enabled,
			distress_monitor_enabled, minhealth_sync_enabled
		) VALUES (1,$1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO NOTHING
	`,
		s.MedBoxID,
		s.SnoozeDurationMinutes,
		s.NotificationsEnabled,
		s.VoiceAgentEnabled,
		s.DistressMonitorEnabled,
		s.MinHealthSyncEnabled,
	)
	return 1, err
}

func (r *SettingsRepo) Update(ctx context.Context, s settings.Settings) error {
	return execOne(ctx, r.db, `
		UPDATE settings
		SET
			medbox_id = $1,
			snooze_duration_minutes = $2,
			notifications_enabled = $3,
			voice_agent_enabled = $4,
			distress_monitor_enabled = $5,
			minhealth_sync_enabled = $6
		WHERE id = 1
	`,
		s.MedBoxID,
		s.SnoozeDurationMinutes,
		s.NotificationsEnabled,
		s.VoiceAgentEnabled,
		s.DistressMonitorEnabled,
		s.MinHealthSyncEnabled,
	)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"medisafe-companion/internal/domain/medbox"
	"medisafe-companion/internal/domain/profile"
	"medisafe-companion/internal/domain/settings"
	"medisafe-companion/internal/ports/storage"
)

// Las tres tablas de fila única usan id = 1 e INSERT OR IGNORE para el get-or-create.

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(d *DB) *ProfileRepo {
	return &ProfileRepo{db: d.db}
}

func (r *ProfileRepo) Get(ctx context.Context) (profile.Profile, error) {
	var p profile.Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, condition, doctor_notes FROM profile WHERE id = 1
	`).Scan(&p.ID, &p.Name, &p.Condition, &p.DoctorNotes)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.Profile{}, storage.ErrNotFound
	}
	return p, err
}

func (r *ProfileRepo) Create(ctx context.Context, p profile.Profile) (int64, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO profile (id, name, condition, doctor_notes) VALUES (1, ?, ?, ?)
	`, p.Name, p.Condition, p.DoctorNotes)
	if err != nil {
		return 0, fmt.Errorf("create profile: %w", err)
	}
	return 1, nil
}

func (r *ProfileRepo) Update(ctx context.Context, p profile.Profile) error {
	return execOne(ctx, r.db, `
		UPDATE profile SET name = ?, condition = ?, doctor_notes = ? WHERE id = 1
	`, p.Name, p.Condition, p.DoctorNotes)
}

type MedBoxRepo struct {
	db *sql.DB
}

func NewMedBoxRepo(d *DB) *MedBoxRepo {
	return &MedBoxRepo{db: d.db}
}

func (r *MedBoxRepo) Get(ctx context.Context) (medbox.MedBox, error) {
	var (
		m  medbox.MedBox
		ts string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, current_weight_grams, last_weight_grams, status, last_updated FROM medbox WHERE id = 1
	`).Scan(&m.ID, &m.CurrentWeightGrams, &m.LastWeightGrams, &m.Status, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return medbox.MedBox{}, storage.ErrNotFound
	}
	if err != nil {
		return medbox.MedBox{}, err
	}
	if m.LastUpdated, err = parseTime(ts); err != nil {
		return medbox.MedBox{}, fmt.Errorf("parse last_updated: %w", err)
	}
	return m, nil
}

func (r *MedBoxRepo) Create(ctx context.Context, m medbox.MedBox) (int64, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO medbox (id, current_weight_grams, last_weight_grams, status, last_updated)
		VALUES (1, ?, ?, ?, ?)
	`, m.CurrentWeightGrams, m.LastWeightGrams, m.Status, formatTime(m.LastUpdated))
	if err != nil {
		return 0, fmt.Errorf("create medbox: %w", err)
	}
	return 1, nil
}

func (r *MedBoxRepo) Update(ctx context.Context, m medbox.MedBox) error {
	return execOne(ctx, r.db, `
		UPDATE medbox
		SET current_weight_grams = ?, last_weight_grams = ?, status = ?, last_updated = ?
		WHERE id = 1
	`, m.CurrentWeightGrams, m.LastWeightGrams, m.Status, formatTime(m.LastUpdated))
}

type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(d *DB) *SettingsRepo {
	return &SettingsRepo{db: d.db}
}

func (r *SettingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	var s settings.Settings
	err := r.db.QueryRowContext(ctx, `
		SELECT id, medbox_id, snooze_duration_minutes,
		       notifications_enabled, voice_agent_enabled, distress_monitor_enabled, minhealth_sync_enabled
		FROM settings WHERE id = 1
	`).Scan(&s.ID, &s.MedBoxID, &s.SnoozeDurationMinutes,
		&s.NotificationsEnabled, &s.VoiceAgentEnabled, &s.DistressMonitorEnabled, &s.MinHealthSyncEnabled)
	if errors.Is(err, sql.ErrNoRows) {
		return settings.Settings{}, storage.ErrNotFound
	}
	return s, err
}

func (r *SettingsRepo) Create(ctx context.Context, s settings.Settings) (int64, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO settings (
			id, medbox_id, snooze_duration_minutes,
			notifications_enabled, voice_agent_enabled, distress_monitor_enabled, minhealth_sync_enabled
		) VALUES (1, ?, ?, ?, ?, ?, ?)
	`, s.MedBoxID, s.SnoozeDurationMinutes,
		boolToInt(s.NotificationsEnabled), boolToInt(s.VoiceAgentEnabled),
		boolToInt(s.DistressMonitorEnabled), boolToInt(s.MinHealthSyncEnabled))
	if err != nil {
		return 0, fmt.Errorf("create settings: %w", err)
	}
	return 1, nil
}

func (r *SettingsRepo) Update(ctx context.Context, s settings.Settings) error {
	return execOne(ctx, r.db, `
		UPDATE settings
		SET medbox_id = ?, snooze_duration_minutes = ?,
		    notifications_enabled = ?, voice_agent_enabled = ?,
		    distress_monitor_enabled = ?, minhealth_sync_enabled = ?
		WHERE id = 1
	`, s.MedBoxID, s.SnoozeDurationMinutes,
		boolToInt(s.NotificationsEnabled), boolToInt(s.VoiceAgentEnabled),
		boolToInt(s.DistressMonitorEnabled), boolToInt(s.MinHealthSyncEnabled))
}

func execOne(ctx context.Context, db *sql.DB, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

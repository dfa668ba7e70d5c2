package postgres

import (
	"context"
	"database/sql"
)

// Schema es el DDL idempotente. dose_logs.medication_id no referencia medications:
// al borrar una medicación sus registros quedan huérfanos.
const Schema = `
CREATE TABLE IF NOT EXISTS medications (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	dosage TEXT NOT NULL DEFAULT '',
	frequency TEXT NOT NULL DEFAULT 'Daily',
	time TEXT NOT NULL,
	qr_data TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS dose_logs (
	id BIGSERIAL PRIMARY KEY,
	medication_id BIGINT,
	status TEXT NOT NULL CHECK (status IN ('taken', 'missed')),
	mood TEXT NOT NULL DEFAULT 'Normal',
	notes TEXT NOT NULL DEFAULT '',
	timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS profile (
	id SMALLINT PRIMARY KEY CHECK (id = 1),
	name TEXT NOT NULL,
	condition TEXT NOT NULL,
	doctor_notes TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS medbox (
	id SMALLINT PRIMARY KEY CHECK (id = 1),
	current_weight_grams DOUBLE PRECISION NOT NULL,
	last_weight_grams DOUBLE PRECISION NOT NULL,
	status TEXT NOT NULL,
	last_updated TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS ai_notifications (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	body TEXT NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('info', 'urgent', 'recommendation')),
	is_read BOOLEAN NOT NULL DEFAULT FALSE,
	timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS settings (
	id SMALLINT PRIMARY KEY CHECK (id = 1),
	medbox_id TEXT NOT NULL,
	snooze_duration_minutes INTEGER NOT NULL CHECK (snooze_duration_minutes BETWEEN 1 AND 240),
	notifications_enabled BOOLEAN NOT NULL,
	voice_agent_enabled BOOLEAN NOT NULL,
	distress_monitor_enabled BOOLEAN NOT NULL,
	minhealth_sync_enabled BOOLEAN NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_dose_logs_timestamp ON dose_logs (timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_ai_notifications_timestamp ON ai_notifications (timestamp DESC);
`

func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}

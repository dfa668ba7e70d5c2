package sqlite

import "context"

// Migrate crea las tablas si no existen. dose_logs.medication_id no tiene FOREIGN KEY:
// borrar una medicación deja los registros huérfanos a propósito.
func (d *DB) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS medications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		dosage TEXT NOT NULL DEFAULT '',
		frequency TEXT NOT NULL DEFAULT 'Daily',
		time TEXT NOT NULL,
		qr_data TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS dose_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		medication_id INTEGER,
		status TEXT NOT NULL CHECK (status IN ('taken', 'missed')),
		mood TEXT NOT NULL DEFAULT 'Normal',
		notes TEXT NOT NULL DEFAULT '',
		timestamp TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		name TEXT NOT NULL,
		condition TEXT NOT NULL,
		doctor_notes TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS medbox (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		current_weight_grams REAL NOT NULL,
		last_weight_grams REAL NOT NULL,
		status TEXT NOT NULL,
		last_updated TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ai_notifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		type TEXT NOT NULL CHECK (type IN ('info', 'urgent', 'recommendation')),
		is_read INTEGER NOT NULL DEFAULT 0,
		timestamp TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		medbox_id TEXT NOT NULL,
		snooze_duration_minutes INTEGER NOT NULL,
		notifications_enabled INTEGER NOT NULL,
		voice_agent_enabled INTEGER NOT NULL,
		distress_monitor_enabled INTEGER NOT NULL,
		minhealth_sync_enabled INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_dose_logs_timestamp ON dose_logs(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_ai_notifications_timestamp ON ai_notifications(timestamp DESC);
	`
	_, err := d.db.ExecContext(ctx, schema)
	return err
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"medisafe-companion/internal/domain/doselogs"
)

type DoseLogRepo struct {
	db *sql.DB
}

func NewDoseLogRepo(d *DB) *DoseLogRepo {
	return &DoseLogRepo{db: d.db}
}

func (r *DoseLogRepo) Create(ctx context.Context, e doselogs.Entry) (int64, error) {
	var medID sql.NullInt64
	if e.MedicationID != nil {
		medID = sql.NullInt64{Int64: *e.MedicationID, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO dose_logs (medication_id, status, mood, notes, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, medID, string(e.Status), e.Mood, e.Notes, formatTime(e.Timestamp))
	if err != nil {
		return 0, fmt.Errorf("create dose log: %w", err)
	}
	return res.LastInsertId()
}

// List hace el LEFT JOIN con medications; medication_id sin fila = huérfano.
func (r *DoseLogRepo) List(ctx context.Context, limit int) ([]doselogs.EntryView, error) {
	query := `
		SELECT l.id, l.medication_id, l.status, l.mood, l.notes, l.timestamp,
		       m.name, (l.medication_id IS NOT NULL AND m.id IS NULL)
		FROM dose_logs l
		LEFT JOIN medications m ON m.id = l.medication_id
		ORDER BY l.timestamp DESC, l.id DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dose logs: %w", err)
	}
	defer rows.Close()

	out := make([]doselogs.EntryView, 0)
	for rows.Next() {
		var (
			v      doselogs.EntryView
			medID  sql.NullInt64
			status string
			ts     string
			name   sql.NullString
			orphan bool
		)
		if err := rows.Scan(&v.ID, &medID, &status, &v.Mood, &v.Notes, &ts, &name, &orphan); err != nil {
			return nil, err
		}
		if medID.Valid {
			id := medID.Int64
			v.MedicationID = &id
		}
		v.Status = doselogs.Status(status)
		v.MedicationName = name.String
		v.Orphaned = orphan

		t, err := parseTime(ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp: %w", err)
		}
		v.Timestamp = t
		out = append(out, v)
	}
	return out, rows.Err()
}

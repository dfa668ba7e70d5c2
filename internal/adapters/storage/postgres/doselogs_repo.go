package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"medisafe-companion/internal/domain/doselogs"
)

type DoseLogRepo struct {
	db *sql.DB
}

func NewDoseLogRepo(db *sql.DB) *DoseLogRepo {
	return &DoseLogRepo{db: db}
}

func (r *DoseLogRepo) Create(ctx context.Context, e doselogs.Entry) (int64, error) {
	var medID sql.NullInt64
	if e.MedicationID != nil {
		medID = sql.NullInt64{Int64: *e.MedicationID, Valid: true}
	}

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO dose_logs (medication_id, status, mood, notes, timestamp)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		medID,
		string(e.Status),
		e.Mood,
		e.Notes,
		e.Timestamp,
	).Scan(&id)
	return id, err
}

func (r *DoseLogRepo) List(ctx context.Context, limit int) ([]doselogs.EntryView, error) {
	query := `
		SELECT
			l.id, l.medication_id, l.status, l.mood, l.notes, l.timestamp,
			m.name,
			(l.medication_id IS NOT NULL AND m.id IS NULL) AS orphaned
		FROM dose_logs l
		LEFT JOIN medications m ON m.id = l.medication_id
		ORDER BY l.timestamp DESC, l.id DESC
	`
	var args []any
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]doselogs.EntryView, 0)
	for rows.Next() {
		var (
			v      doselogs.EntryView
			medID  sql.NullInt64
			status string
			name   sql.NullString
		)
		if err := rows.Scan(&v.ID, &medID, &status, &v.Mood, &v.Notes, &v.Timestamp, &name, &v.Orphaned); err != nil {
			return nil, err
		}
		if medID.Valid {
			id := medID.Int64
			v.MedicationID = &id
		}
		v.Status = doselogs.Status(status)
		v.MedicationName = name.String
		out = append(out, v)
	}
	return out, rows.Err()
}

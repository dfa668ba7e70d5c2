package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/ports/storage"
)

type MedicationRepo struct {
	db *sql.DB
}

func NewMedicationRepo(d *DB) *MedicationRepo {
	return &MedicationRepo{db: d.db}
}

func (r *MedicationRepo) Create(ctx context.Context, m medications.Medication) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO medications (name, dosage, frequency, time, qr_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.Name, m.Dosage, m.Frequency, m.Time, m.QRData, formatTime(m.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("create medication: %w", err)
	}
	return res.LastInsertId()
}

func (r *MedicationRepo) GetByID(ctx context.Context, id int64) (medications.Medication, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, dosage, frequency, time, qr_data, created_at
		FROM medications
		WHERE id = ?
	`, id)

	m, err := scanMedication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return medications.Medication{}, storage.ErrNotFound
	}
	return m, err
}

func (r *MedicationRepo) List(ctx context.Context) ([]medications.Medication, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, dosage, frequency, time, qr_data, created_at
		FROM medications
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicationRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMedication(s scanner) (medications.Medication, error) {
	var (
		m       medications.Medication
		created string
	)
	if err := s.Scan(&m.ID, &m.Name, &m.Dosage, &m.Frequency, &m.Time, &m.QRData, &created); err != nil {
		return medications.Medication{}, err
	}
	t, err := parseTime(created)
	if err != nil {
		return medications.Medication{}, fmt.Errorf("parse created_at: %w", err)
	}
	m.CreatedAt = t
	return m, nil
}

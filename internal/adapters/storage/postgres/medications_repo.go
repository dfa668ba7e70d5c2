package postgres

import (
	"context"
	"database/sql"
	"errors"

	"medisafe-companion/internal/domain/medications"
)

type MedicationRepo struct {
	db *sql.DB
}

func NewMedicationRepo(db *sql.DB) *MedicationRepo {
	return &MedicationRepo{db: db}
}

func (r *MedicationRepo) Create(ctx context.Context, m medications.Medication) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medications (name, dosage, frequency, time, qr_data, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		m.Name,
		m.Dosage,
		m.Frequency,
		m.Time,
		m.QRData,
		m.CreatedAt,
	).Scan(&id)
	return id, err
}

func (r *MedicationRepo) GetByID(ctx context.Context, id int64) (medications.Medication, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, dosage, frequency, time, qr_data, created_at
		FROM medications
		WHERE id = $1
	`, id)

	var m medications.Medication
	if err := row.Scan(&m.ID, &m.Name, &m.Dosage, &m.Frequency, &m.Time, &m.QRData, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medications.Medication{}, ErrNotFound
		}
		return medications.Medication{}, err
	}
	return m, nil
}

func (r *MedicationRepo) List(ctx context.Context) ([]medications.Medication, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, dosage, frequency, time, qr_data, created_at
		FROM medications
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		var m medications.Medication
		if err := rows.Scan(&m.ID, &m.Name, &m.Dosage, &m.Frequency, &m.Time, &m.QRData, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicationRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, `DELETE FROM medications WHERE id = $1`, id)
}

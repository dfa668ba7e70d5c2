package postgres

import (
	"context"
	"database/sql"

	"medisafe-companion/internal/domain/notifications"
)

type NotificationRepo struct {
	db *sql.DB
}

func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Create(ctx context.Context, n notifications.Notification) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO ai_notifications (title, body, type, is_read, timestamp)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		n.Title,
		n.Body,
		string(n.Category),
		n.Read,
		n.Timestamp,
	).Scan(&id)
	return id, err
}

func (r *NotificationRepo) ListLatest(ctx context.Context, limit int) ([]notifications.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, body, type, is_read, timestamp
		FROM ai_notifications
		ORDER BY timestamp DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notifications.Notification, 0, limit)
	for rows.Next() {
		var (
			n   notifications.Notification
			cat string
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &cat, &n.Read, &n.Timestamp); err != nil {
			return nil, err
		}
		n.Source = notifications.SourceAI
		n.Category = notifications.Category(cat)
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, `UPDATE ai_notifications SET is_read = TRUE WHERE id = $1`, id)
}

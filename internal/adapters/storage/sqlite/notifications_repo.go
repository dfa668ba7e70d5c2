package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"medisafe-companion/internal/domain/notifications"
	"medisafe-companion/internal/ports/storage"
)

type NotificationRepo struct {
	db *sql.DB
}

func NewNotificationRepo(d *DB) *NotificationRepo {
	return &NotificationRepo{db: d.db}
}

func (r *NotificationRepo) Create(ctx context.Context, n notifications.Notification) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO ai_notifications (title, body, type, is_read, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, n.Title, n.Body, string(n.Category), boolToInt(n.Read), formatTime(n.Timestamp))
	if err != nil {
		return 0, fmt.Errorf("create notification: %w", err)
	}
	return res.LastInsertId()
}

func (r *NotificationRepo) ListLatest(ctx context.Context, limit int) ([]notifications.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, body, type, is_read, timestamp
		FROM ai_notifications
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	out := make([]notifications.Notification, 0, limit)
	for rows.Next() {
		var (
			n   notifications.Notification
			cat string
			ts  string
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &cat, &n.Read, &ts); err != nil {
			return nil, err
		}
		n.Source = notifications.SourceAI
		n.Category = notifications.Category(cat)
		if n.Timestamp, err = parseTime(ts); err != nil {
			return nil, fmt.Errorf("parse timestamp: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE ai_notifications SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

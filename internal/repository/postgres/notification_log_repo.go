package postgres

import (
	"context"
	"database/sql"

	"eventattend/internal/domain"
)

type notificationLogRepository struct {
	DB *sql.DB
}

func NewNotificationLogRepository(db *sql.DB) domain.NotificationLogRepository {
	return &notificationLogRepository{DB: db}
}

func (r *notificationLogRepository) Create(ctx context.Context, entry *domain.NotificationLogEntry) error {
	query := `
		INSERT INTO notification_logs (user_id, event_id, type, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query, entry.UserID, entry.EventID, entry.Type, entry.Status).
		Scan(&entry.ID, &entry.CreatedAt)
}

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventattend/internal/domain"
)

func TestNotificationLogRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO notification_logs`).
			WithArgs(int64(10), int64(1), "registration", "sent").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))

		repo := NewNotificationLogRepository(db)
		entry := &domain.NotificationLogEntry{
			UserID:  10,
			EventID: 1,
			Type:    domain.NotificationTypeRegistration,
			Status:  domain.NotificationStatusSent,
		}
		err = repo.Create(ctx, entry)

		require.NoError(t, err)
		assert.Equal(t, int64(3), entry.ID)
		assert.Equal(t, now, entry.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO notification_logs`).
			WillReturnError(sql.ErrConnDone)

		repo := NewNotificationLogRepository(db)
		entry := &domain.NotificationLogEntry{
			UserID:  10,
			EventID: 1,
			Type:    domain.NotificationTypeAttendance,
			Status:  domain.NotificationStatusFailed,
		}
		err = repo.Create(ctx, entry)

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

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

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      int64
		mock    func(mock sqlmock.Sqlmock)
		errIs   error
		wantErr bool
	}{
		{
			name: "success",
			id:   10,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email", "event_id", "created_at"}).
					AddRow(10, "Alice", "alice@example.com", 1, now)
				mock.ExpectQuery(`SELECT id, name, email, event_id, created_at`).
					WithArgs(int64(10)).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			id:   99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, email, event_id, created_at`).
					WithArgs(int64(99)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "db error",
			id:   10,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, email, event_id, created_at`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			user, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(10), user.ID)
				assert.Equal(t, "alice@example.com", user.Email)
				assert.Equal(t, int64(1), user.EventID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_ListByEventID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "event_id", "created_at"}).
		AddRow(10, "Alice", "alice@example.com", 1, now).
		AddRow(11, "Bob", "bob@example.com", 1, now)
	mock.ExpectQuery(`SELECT id, name, email, event_id, created_at`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	repo := NewUserRepository(db)
	users, err := repo.ListByEventID(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListAllEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, email, event_id, created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "event_id", "created_at"}))

	repo := NewUserRepository(db)
	users, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
	require.NoError(t, mock.ExpectationsWereMet())
}

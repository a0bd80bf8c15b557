package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventattend/internal/domain"
)

func TestEventRepository_CreateWithLink(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	buildLink := func(eventID int64) (*domain.RegistrationLink, error) {
		return &domain.RegistrationLink{
			Link:   "http://localhost:3002/register/1",
			QRCode: "data:image/png;base64,abc",
		}, nil
	}

	t.Run("success commits event and link", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO events`).
			WithArgs("Tech Conference", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
		mock.ExpectExec(`INSERT INTO event_registration_links`).
			WithArgs(int64(1), "http://localhost:3002/register/1", "data:image/png;base64,abc").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewEventRepository(db)
		event := domain.NewEvent("Tech Conference", nil, nil, 7)
		err = repo.CreateWithLink(ctx, event, buildLink)

		require.NoError(t, err)
		assert.Equal(t, int64(1), event.ID)
		assert.Equal(t, now, event.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("buildLink error rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO events`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
		mock.ExpectRollback()

		repo := NewEventRepository(db)
		event := domain.NewEvent("Tech Conference", nil, nil, 7)
		err = repo.CreateWithLink(ctx, event, func(eventID int64) (*domain.RegistrationLink, error) {
			return nil, errors.New("qr encode failed")
		})

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("link insert error rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO events`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
		mock.ExpectExec(`INSERT INTO event_registration_links`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewEventRepository(db)
		event := domain.NewEvent("Tech Conference", nil, nil, 7)
		err = repo.CreateWithLink(ctx, event, buildLink)

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_GetByID(t *testing.T) {
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
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "purpose", "date", "location", "admin_id", "created_at"}).
					AddRow(1, "Tech Conference", nil, "Main Hall", 7, now)
				mock.ExpectQuery(`SELECT id, purpose, date, location, admin_id, created_at`).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			id:   99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, purpose, date, location, admin_id, created_at`).
					WithArgs(int64(99)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "db error",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, purpose, date, location, admin_id, created_at`).
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
			repo := NewEventRepository(db)
			event, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Tech Conference", event.Purpose)
				assert.Nil(t, event.Date)
				require.NotNil(t, event.Location)
				assert.Equal(t, "Main Hall", *event.Location)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_ListByAdminID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "purpose", "date", "location", "admin_id", "created_at"}).
		AddRow(2, "Workshop", now, nil, 7, now).
		AddRow(1, "Tech Conference", nil, "Main Hall", 7, now)
	mock.ExpectQuery(`SELECT id, purpose, date, location, admin_id, created_at`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	repo := NewEventRepository(db)
	events, err := repo.ListByAdminID(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(2), events[0].ID)
	assert.Nil(t, events[1].Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListAllEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, purpose, date, location, admin_id, created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "purpose", "date", "location", "admin_id", "created_at"}))

	repo := NewEventRepository(db)
	events, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
	require.NoError(t, mock.ExpectationsWereMet())
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventattend/internal/domain"
)

type importStore struct {
	DB *sql.DB
}

// NewImportStore returns an ImportStore backed by the given database. Each
// Begin opens one transaction that the returned handle exclusively owns.
func NewImportStore(db *sql.DB) domain.ImportStore {
	return &importStore{DB: db}
}

func (s *importStore) Begin(ctx context.Context) (domain.ImportTx, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &importTx{tx: tx}, nil
}

type importTx struct {
	tx *sql.Tx
}

func (t *importTx) EventByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT id, purpose, date, location, admin_id, created_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var dateNull sql.NullTime
	var locNull sql.NullString
	err := t.tx.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Purpose, &dateNull, &locNull, &e.AdminID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if dateNull.Valid {
		e.Date = &dateNull.Time
	}
	if locNull.Valid {
		e.Location = &locNull.String
	}
	return e, nil
}

func (t *importTx) UserExists(ctx context.Context, email string, eventID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1 AND event_id = $2
		)
	`
	var exists bool
	if err := t.tx.QueryRowContext(ctx, query, email, eventID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (t *importTx) CreateUser(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (name, email, event_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := t.tx.QueryRowContext(ctx, query, u.Name, u.Email, u.EventID).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (t *importTx) Commit() error {
	return t.tx.Commit()
}

func (t *importTx) Rollback() error {
	return t.tx.Rollback()
}

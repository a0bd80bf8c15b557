package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventattend/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, email, event_id, created_at
		FROM users
		WHERE id = $1
	`
	u := &domain.User{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.EventID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, name, email, event_id, created_at
		FROM users
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

func (r *userRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.User, error) {
	query := `
		SELECT id, name, email, event_id, created_at
		FROM users
		WHERE event_id = $1
		ORDER BY name ASC
	`
	return r.list(ctx, query, eventID)
}

func (r *userRepository) list(ctx context.Context, query string, args ...any) ([]*domain.User, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u := &domain.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.EventID, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

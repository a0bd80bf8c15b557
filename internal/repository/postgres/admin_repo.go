package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventattend/internal/domain"
)

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{DB: db}
}

func (r *adminRepository) Create(ctx context.Context, a *domain.Admin) error {
	query := `
		INSERT INTO admins (name, email, password_hash, institution, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, a.Name, a.Email, a.PasswordHash, a.Institution, a.Role).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `
		SELECT id, name, email, password_hash, institution, role, created_at
		FROM admins
		WHERE email = $1
	`
	a := &domain.Admin{}
	var instNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &instNull, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	a.Institution = instNull.String
	return a, nil
}

func (r *adminRepository) List(ctx context.Context) ([]*domain.Admin, error) {
	query := `
		SELECT id, name, email, institution, role, created_at
		FROM admins
		ORDER BY id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := make([]*domain.Admin, 0)
	for rows.Next() {
		a := &domain.Admin{}
		var instNull sql.NullString
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &instNull, &a.Role, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Institution = instNull.String
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventattend/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) CreateWithLink(ctx context.Context, e *domain.Event, buildLink func(eventID int64) (*domain.RegistrationLink, error)) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertEvent := `
		INSERT INTO events (purpose, date, location, admin_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	var date sql.NullTime
	if e.Date != nil {
		date = sql.NullTime{Time: *e.Date, Valid: true}
	}
	var location sql.NullString
	if e.Location != nil {
		location = sql.NullString{String: *e.Location, Valid: true}
	}
	if err := tx.QueryRowContext(ctx, insertEvent, e.Purpose, date, location, e.AdminID).
		Scan(&e.ID, &e.CreatedAt); err != nil {
		return err
	}

	link, err := buildLink(e.ID)
	if err != nil {
		return err
	}
	link.EventID = e.ID
	insertLink := `
		INSERT INTO event_registration_links (event_id, registration_link, qr_code)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.ExecContext(ctx, insertLink, link.EventID, link.Link, link.QRCode); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT id, purpose, date, location, admin_id, created_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var dateNull sql.NullTime
	var locNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
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

func (r *eventRepository) ListByAdminID(ctx context.Context, adminID int64) ([]*domain.Event, error) {
	query := `
		SELECT id, purpose, date, location, admin_id, created_at
		FROM events
		WHERE admin_id = $1
		ORDER BY date DESC NULLS LAST, id DESC
	`
	return r.list(ctx, query, adminID)
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, purpose, date, location, admin_id, created_at
		FROM events
		ORDER BY date DESC NULLS LAST, id DESC
	`
	return r.list(ctx, query)
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var dateNull sql.NullTime
		var locNull sql.NullString
		if err := rows.Scan(&e.ID, &e.Purpose, &dateNull, &locNull, &e.AdminID, &e.CreatedAt); err != nil {
			return nil, err
		}
		if dateNull.Valid {
			e.Date = &dateNull.Time
		}
		if locNull.Valid {
			e.Location = &locNull.String
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

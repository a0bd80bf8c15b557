package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"eventattend/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{DB: db}
}

func (r *attendanceRepository) Create(ctx context.Context, rec *domain.AttendanceRecord) error {
	query := `
		INSERT INTO attendance (user_id, event_id)
		VALUES ($1, $2)
		RETURNING id, recorded_at
	`
	err := r.DB.QueryRowContext(ctx, query, rec.UserID, rec.EventID).
		Scan(&rec.ID, &rec.RecordedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

const attendanceSelect = `
	SELECT a.id, a.user_id, a.event_id, a.recorded_at,
	       u.name, u.email, e.purpose
	FROM attendance a
	JOIN users u ON u.id = a.user_id
	JOIN events e ON e.id = a.event_id
`

func (r *attendanceRepository) ListAll(ctx context.Context) ([]*domain.AttendanceRecordDetail, error) {
	query := attendanceSelect + ` ORDER BY a.recorded_at DESC`
	return r.list(ctx, query)
}

func (r *attendanceRepository) ListByAdminID(ctx context.Context, adminID int64) ([]*domain.AttendanceRecordDetail, error) {
	query := attendanceSelect + ` WHERE e.admin_id = $1 ORDER BY a.recorded_at DESC`
	return r.list(ctx, query, adminID)
}

func (r *attendanceRepository) list(ctx context.Context, query string, args ...any) ([]*domain.AttendanceRecordDetail, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.AttendanceRecordDetail, 0)
	for rows.Next() {
		d := &domain.AttendanceRecordDetail{}
		if err := rows.Scan(&d.ID, &d.UserID, &d.EventID, &d.RecordedAt,
			&d.UserName, &d.UserEmail, &d.EventPurpose); err != nil {
			return nil, err
		}
		records = append(records, d)
	}
	return records, rows.Err()
}

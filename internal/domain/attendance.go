package domain

import (
	"context"
	"time"
)

// AttendanceRecord marks a registered user as checked in at an event.
// The (user_id, event_id) pair is unique: one check-in per registration.
type AttendanceRecord struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	EventID    int64     `json:"event_id"`
	RecordedAt time.Time `json:"recorded_at"`
}

// AttendanceRecordDetail is an attendance record joined with user and event info.
type AttendanceRecordDetail struct {
	AttendanceRecord
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	EventPurpose string `json:"event_purpose"`
}

// AttendanceRepository defines storage operations for attendance records.
type AttendanceRepository interface {
	// Create inserts the record. A duplicate (user_id, event_id) pair is
	// surfaced as ErrDuplicate.
	Create(ctx context.Context, rec *AttendanceRecord) error
	ListAll(ctx context.Context) ([]*AttendanceRecordDetail, error)
	ListByAdminID(ctx context.Context, adminID int64) ([]*AttendanceRecordDetail, error)
}

// AttendanceService records check-ins and lists attendance.
type AttendanceService interface {
	// Record checks the user in. The user must be registered for the event;
	// a repeat check-in returns ErrDuplicate.
	Record(ctx context.Context, userID, eventID int64) (*AttendanceRecord, error)
	// List returns all records for super admins, otherwise only records for
	// the admin's own events.
	List(ctx context.Context, adminID int64, role string) ([]*AttendanceRecordDetail, error)
}

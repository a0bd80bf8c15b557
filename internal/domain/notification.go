package domain

import (
	"context"
	"time"
)

// Notification log types and statuses. One row is appended per attempted send.
const (
	NotificationTypeRegistration = "registration"
	NotificationTypeAttendance   = "attendance"

	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// NotificationLogEntry is one row of the append-only notification audit trail.
type NotificationLogEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	EventID   int64     `json:"event_id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationLogRepository appends notification outcomes.
type NotificationLogRepository interface {
	Create(ctx context.Context, entry *NotificationLogEntry) error
}

// Notifier sends confirmation emails. Sends are best-effort: failures are
// recorded to the notification log and never returned to the caller.
type Notifier interface {
	SendRegistrationConfirmation(ctx context.Context, user *User, event *Event)
	SendAttendanceConfirmation(ctx context.Context, user *User, event *Event)
}

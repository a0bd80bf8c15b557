package domain

import (
	"context"
	"time"
)

// Event represents an event open for registration. Events are immutable
// after creation from the registration workflow's point of view.
// swagger:model Event
type Event struct {
	ID        int64      `json:"id"`
	Purpose   string     `json:"purpose"`
	Date      *time.Time `json:"date,omitempty"`
	Location  *string    `json:"location,omitempty"`
	AdminID   int64      `json:"admin_id"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewEvent returns a new Event. ID is set by the repository on create.
func NewEvent(purpose string, date *time.Time, location *string, adminID int64) *Event {
	return &Event{
		Purpose:  purpose,
		Date:     date,
		Location: location,
		AdminID:  adminID,
	}
}

// RegistrationLink is the self-registration link and QR code stored for an event.
type RegistrationLink struct {
	EventID int64  `json:"event_id"`
	Link    string `json:"registration_link"`
	QRCode  string `json:"qr_code"`
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	// CreateWithLink inserts the event and its registration link in one
	// transaction. buildLink is called with the assigned event ID to produce
	// the link row; an error from it aborts the transaction.
	CreateWithLink(ctx context.Context, event *Event, buildLink func(eventID int64) (*RegistrationLink, error)) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	ListByAdminID(ctx context.Context, adminID int64) ([]*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
}

// EventWithUsers bundles an event with its registered users.
type EventWithUsers struct {
	Event *Event  `json:"event"`
	Users []*User `json:"users"`
}

// EventService defines admin-facing event operations.
type EventService interface {
	Create(ctx context.Context, adminID int64, purpose string, date *time.Time, location *string) (*Event, *RegistrationLink, error)
	// List returns all events for super admins, otherwise only the admin's own.
	List(ctx context.Context, adminID int64, role string) ([]*Event, error)
	// Get returns the event with its registered users. Only the owning admin
	// or a super admin may view it.
	Get(ctx context.Context, eventID, adminID int64, role string) (*EventWithUsers, error)
}

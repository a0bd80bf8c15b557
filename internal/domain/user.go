package domain

import (
	"context"
	"fmt"
	"time"
)

// User is a registration record: one person registered for one event.
// The (email, event_id) pair is unique; a person may register for multiple
// distinct events but not twice for the same one.
// swagger:model User
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	EventID   int64     `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser returns a new User. ID is set by the repository on create.
func NewUser(name, email string, eventID int64) *User {
	return &User{
		Name:    name,
		Email:   email,
		EventID: eventID,
	}
}

// UserWithEvent bundles a created registration with its event, for
// post-commit notification fan-out.
type UserWithEvent struct {
	User  *User
	Event *Event
}

// UserRepository defines non-transactional storage operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*User, error)
}

// ImportTx is a transaction-scoped handle over the record store. It is
// exclusively owned by one in-flight call; Commit or Rollback must be
// called on every exit path.
type ImportTx interface {
	EventByID(ctx context.Context, id int64) (*Event, error)
	// UserExists reports whether the (email, eventID) pair is already registered.
	UserExists(ctx context.Context, email string, eventID int64) (bool, error)
	// CreateUser inserts the user within the transaction. A unique-constraint
	// violation is surfaced as ErrDuplicate.
	CreateUser(ctx context.Context, user *User) error
	Commit() error
	Rollback() error
}

// ImportStore opens transactions for the registration and import workflows.
type ImportStore interface {
	Begin(ctx context.Context) (ImportTx, error)
}

// ImportRow is one candidate row parsed from an uploaded file. EventID is
// kept as the raw string from the file; the import engine parses it.
type ImportRow struct {
	Name    string
	Email   string
	EventID string
}

// ImportRowError describes why a single row failed validation.
type ImportRowError struct {
	Row     int
	Message string
}

// String formats the error the way it is reported to the caller,
// e.g. "Row 3: Missing required fields (name, email, eventId).".
func (e ImportRowError) String() string {
	return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
}

// ImportResult is the outcome of one import call: either Imported is
// populated and RowErrors is empty, or RowErrors is populated and nothing
// was persisted. Never both.
type ImportResult struct {
	ImportedCount int
	Imported      []*UserWithEvent
	RowErrors     []ImportRowError
}

// Failed reports whether the batch was rejected.
func (r *ImportResult) Failed() bool {
	return len(r.RowErrors) > 0
}

// ErrorStrings returns the formatted row error messages in input order.
func (r *ImportResult) ErrorStrings() []string {
	msgs := make([]string, 0, len(r.RowErrors))
	for _, e := range r.RowErrors {
		msgs = append(msgs, e.String())
	}
	return msgs
}

// ImportService is the bulk import engine: all-or-nothing commit of a batch
// of registration rows, followed by best-effort notification fan-out.
type ImportService interface {
	ImportUsers(ctx context.Context, rows []ImportRow) (*ImportResult, error)
}

// RegistrationService is the single-row registration path: same checks and
// transactional commit as the import engine, collapsed to one row.
type RegistrationService interface {
	Register(ctx context.Context, name, email string, eventID int64) (*User, error)
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventattend/internal/domain"
)

func TestRegistrationService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		user    string
		email   string
		eventID int64
		setup   func(*fakeImportStore)
		wantErr error
	}{
		{
			name:    "success",
			user:    "Alice",
			email:   "alice@example.com",
			eventID: 1,
			setup: func(f *fakeImportStore) {
				f.tx.events[1] = &domain.Event{ID: 1, Purpose: "Tech Conference"}
			},
		},
		{
			name:    "missing name",
			user:    "  ",
			email:   "alice@example.com",
			eventID: 1,
			setup:   func(f *fakeImportStore) {},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "invalid email",
			user:    "Alice",
			email:   "not-an-email",
			eventID: 1,
			setup:   func(f *fakeImportStore) {},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "event not found",
			user:    "Alice",
			email:   "alice@example.com",
			eventID: 99,
			setup:   func(f *fakeImportStore) {},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "already registered",
			user:    "Alice",
			email:   "alice@example.com",
			eventID: 1,
			setup: func(f *fakeImportStore) {
				f.tx.events[1] = &domain.Event{ID: 1, Purpose: "Tech Conference"}
				f.tx.registered[regKey("alice@example.com", 1)] = true
			},
			wantErr: domain.ErrDuplicate,
		},
		{
			name:    "concurrent insert loses race",
			user:    "Alice",
			email:   "alice@example.com",
			eventID: 1,
			setup: func(f *fakeImportStore) {
				f.tx.events[1] = &domain.Event{ID: 1, Purpose: "Tech Conference"}
				f.tx.createErr = domain.ErrDuplicate
			},
			wantErr: domain.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeImportStore()
			tt.setup(store)
			notifier := newFakeNotifier()
			svc := NewRegistrationService(store, notifier, testLogger(), testMetrics())

			user, err := svc.Register(ctx, tt.user, tt.email, tt.eventID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.False(t, store.tx.committed)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.email, user.Email)
			assert.NotZero(t, user.ID)
			assert.True(t, store.tx.committed)

			notifier.waitForSends(t, 1)
			notifier.mu.Lock()
			defer notifier.mu.Unlock()
			require.Len(t, notifier.registrations, 1)
			assert.Equal(t, tt.email, notifier.registrations[0].Email)
		})
	}
}

func TestRegistrationService_TrimsInput(t *testing.T) {
	store := newFakeImportStore()
	store.tx.events[1] = &domain.Event{ID: 1, Purpose: "Tech Conference"}
	notifier := newFakeNotifier()
	svc := NewRegistrationService(store, notifier, testLogger(), testMetrics())

	user, err := svc.Register(context.Background(), "  Alice  ", " alice@example.com ", 1)

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	notifier.waitForSends(t, 1)
}

func TestRegistrationService_BeginError(t *testing.T) {
	store := newFakeImportStore()
	store.beginErr = errors.New("connection refused")
	svc := NewRegistrationService(store, newFakeNotifier(), testLogger(), testMetrics())

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", 1)

	require.Error(t, err)
	assert.Nil(t, user)
}

func TestRegistrationService_CommitErrorSendsNothing(t *testing.T) {
	store := newFakeImportStore()
	store.tx.events[1] = &domain.Event{ID: 1, Purpose: "Tech Conference"}
	store.tx.commitErr = errors.New("connection reset")
	notifier := newFakeNotifier()
	svc := NewRegistrationService(store, notifier, testLogger(), testMetrics())

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", 1)

	require.Error(t, err)
	assert.Nil(t, user)

	select {
	case <-notifier.sent:
		t.Fatal("notification sent for an uncommitted registration")
	case <-time.After(50 * time.Millisecond):
	}
}

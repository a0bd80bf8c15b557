package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"eventattend/internal/domain"
	"eventattend/internal/metrics"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type registrationService struct {
	store    domain.ImportStore
	notifier domain.Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewRegistrationService creates the single-row registration path. It runs
// the same event-exists, duplicate, and insert sequence as the import
// engine, collapsed to one row in one transaction.
func NewRegistrationService(store domain.ImportStore, notifier domain.Notifier, logger *slog.Logger, m *metrics.Metrics) domain.RegistrationService {
	return &registrationService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		metrics:  m,
	}
}

func (s *registrationService) Register(ctx context.Context, name, email string, eventID int64) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || eventID == 0 {
		return nil, fmt.Errorf("%w: name, email, and event ID are required", domain.ErrInvalidInput)
	}
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin registration transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := tx.EventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("look up event %d: %w", eventID, err)
	}

	exists, err := tx.UserExists(ctx, email, eventID)
	if err != nil {
		return nil, fmt.Errorf("check duplicate registration: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicate
	}

	user := domain.NewUser(name, email, eventID)
	if err := tx.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit registration transaction: %w", err)
	}

	s.metrics.Registrations.Inc()

	bgCtx := context.WithoutCancel(ctx)
	go s.notifier.SendRegistrationConfirmation(bgCtx, user, event)

	return user, nil
}

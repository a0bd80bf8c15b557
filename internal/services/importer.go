package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"eventattend/internal/domain"
	"eventattend/internal/metrics"
)

// headerRowOffset converts a 0-based row index into the row number shown to
// the caller, accounting for the one-line file header.
const headerRowOffset = 2

type importService struct {
	store    domain.ImportStore
	notifier domain.Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewImportService creates the bulk import engine.
func NewImportService(store domain.ImportStore, notifier domain.Notifier, logger *slog.Logger, m *metrics.Metrics) domain.ImportService {
	return &importService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		metrics:  m,
	}
}

// ImportUsers validates and commits a batch of registration rows atomically.
// Every row is checked even after the first failure so the caller gets the
// full error list; any failure rolls back the whole batch. Confirmation
// emails are dispatched only after a successful commit and never affect the
// returned result.
func (s *importService) ImportUsers(ctx context.Context, rows []domain.ImportRow) (*domain.ImportResult, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import transaction: %w", err)
	}
	// Rollback after Commit is a no-op; this guarantees no abandoned call
	// leaves the transaction open.
	defer tx.Rollback()

	var rowErrors []domain.ImportRowError
	var pending []*domain.UserWithEvent

	for i, row := range rows {
		rowNum := i + headerRowOffset

		name := strings.TrimSpace(row.Name)
		email := strings.TrimSpace(row.Email)
		rawEventID := strings.TrimSpace(row.EventID)
		if name == "" || email == "" || rawEventID == "" {
			rowErrors = append(rowErrors, domain.ImportRowError{
				Row:     rowNum,
				Message: "Missing required fields (name, email, eventId).",
			})
			continue
		}

		eventID, convErr := strconv.ParseInt(rawEventID, 10, 64)
		if convErr != nil {
			// A non-numeric ID can never match an event row.
			rowErrors = append(rowErrors, domain.ImportRowError{
				Row:     rowNum,
				Message: fmt.Sprintf("Event with ID %s not found.", rawEventID),
			})
			continue
		}

		event, err := tx.EventByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				rowErrors = append(rowErrors, domain.ImportRowError{
					Row:     rowNum,
					Message: fmt.Sprintf("Event with ID %d not found.", eventID),
				})
				continue
			}
			return nil, fmt.Errorf("look up event %d: %w", eventID, err)
		}

		exists, err := tx.UserExists(ctx, email, eventID)
		if err != nil {
			return nil, fmt.Errorf("check duplicate registration: %w", err)
		}
		if exists {
			rowErrors = append(rowErrors, domain.ImportRowError{
				Row:     rowNum,
				Message: fmt.Sprintf("User with email %s is already registered for this event.", email),
			})
			continue
		}

		user := domain.NewUser(name, email, eventID)
		if err := tx.CreateUser(ctx, user); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				// A concurrent import won the race for this (email, eventId) pair.
				rowErrors = append(rowErrors, domain.ImportRowError{
					Row:     rowNum,
					Message: fmt.Sprintf("User with email %s is already registered for this event.", email),
				})
				continue
			}
			return nil, fmt.Errorf("insert user: %w", err)
		}
		pending = append(pending, &domain.UserWithEvent{User: user, Event: event})
	}

	if len(rowErrors) > 0 {
		if err := tx.Rollback(); err != nil {
			s.logger.Error("import rollback failed", "err", err)
		}
		s.metrics.ImportBatchesRejected.Inc()
		return &domain.ImportResult{RowErrors: rowErrors}, nil
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import transaction: %w", err)
	}

	s.metrics.UsersImported.Add(float64(len(pending)))
	s.logger.Info("user import committed", "count", len(pending))

	// The import is durable; email dispatch must not delay the response or
	// be cancelled with the request.
	bgCtx := context.WithoutCancel(ctx)
	go func(batch []*domain.UserWithEvent) {
		for _, p := range batch {
			s.notifier.SendRegistrationConfirmation(bgCtx, p.User, p.Event)
		}
	}(pending)

	return &domain.ImportResult{
		ImportedCount: len(pending),
		Imported:      pending,
	}, nil
}

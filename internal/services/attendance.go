package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventattend/internal/domain"
)

type attendanceService struct {
	attendanceRepo domain.AttendanceRepository
	userRepo       domain.UserRepository
	eventRepo      domain.EventRepository
	notifier       domain.Notifier
	logger         *slog.Logger
}

// NewAttendanceService creates an AttendanceService.
func NewAttendanceService(attendanceRepo domain.AttendanceRepository, userRepo domain.UserRepository, eventRepo domain.EventRepository, notifier domain.Notifier, logger *slog.Logger) domain.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *attendanceService) Record(ctx context.Context, userID, eventID int64) (*domain.AttendanceRecord, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	// The registration record binds the user to exactly one event.
	if user.EventID != eventID {
		return nil, domain.ErrNotFound
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	rec := &domain.AttendanceRecord{UserID: userID, EventID: eventID}
	if err := s.attendanceRepo.Create(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("record attendance: %w", err)
	}

	bgCtx := context.WithoutCancel(ctx)
	go s.notifier.SendAttendanceConfirmation(bgCtx, user, event)

	return rec, nil
}

func (s *attendanceService) List(ctx context.Context, adminID int64, role string) ([]*domain.AttendanceRecordDetail, error) {
	if role == domain.RoleSuperAdmin {
		records, err := s.attendanceRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list attendance: %w", err)
		}
		return records, nil
	}
	records, err := s.attendanceRepo.ListByAdminID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

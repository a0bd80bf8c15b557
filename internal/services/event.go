package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventattend/internal/domain"
)

type eventService struct {
	eventRepo   domain.EventRepository
	userRepo    domain.UserRepository
	qr          domain.QRCodeGenerator
	frontendURL string
}

// NewEventService creates an EventService. frontendURL is the base used to
// build self-registration links.
func NewEventService(eventRepo domain.EventRepository, userRepo domain.UserRepository, qr domain.QRCodeGenerator, frontendURL string) domain.EventService {
	return &eventService{
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		qr:          qr,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

func (s *eventService) Create(ctx context.Context, adminID int64, purpose string, date *time.Time, location *string) (*domain.Event, *domain.RegistrationLink, error) {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return nil, nil, fmt.Errorf("%w: event purpose is required", domain.ErrInvalidInput)
	}

	event := domain.NewEvent(purpose, date, location, adminID)

	// The link needs the DB-assigned event ID, so it is built inside the
	// repository transaction. The QR payload is the registration URL itself
	// so a scan opens the registration form.
	var link *domain.RegistrationLink
	err := s.eventRepo.CreateWithLink(ctx, event, func(eventID int64) (*domain.RegistrationLink, error) {
		url := fmt.Sprintf("%s/register/%d", s.frontendURL, eventID)
		qrCode, err := s.qr.DataURL(url)
		if err != nil {
			return nil, fmt.Errorf("generate event QR code: %w", err)
		}
		link = &domain.RegistrationLink{Link: url, QRCode: qrCode}
		return link, nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create event: %w", err)
	}
	return event, link, nil
}

func (s *eventService) List(ctx context.Context, adminID int64, role string) ([]*domain.Event, error) {
	if role == domain.RoleSuperAdmin {
		events, err := s.eventRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		return events, nil
	}
	events, err := s.eventRepo.ListByAdminID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, eventID, adminID int64, role string) (*domain.EventWithUsers, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.AdminID != adminID && role != domain.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}

	users, err := s.userRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registered users: %w", err)
	}
	return &domain.EventWithUsers{Event: event, Users: users}, nil
}

package services

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"eventattend/internal/domain"
	"eventattend/internal/metrics"
)

type notifier struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	qr       domain.QRCodeGenerator
	logRepo  domain.NotificationLogRepository
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewNotifier returns a Notifier that emails confirmations and appends one
// notification log row per attempted send. Sends are best-effort: every
// failure is swallowed after logging so callers are never affected.
func NewNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, qr domain.QRCodeGenerator, logRepo domain.NotificationLogRepository, logger *slog.Logger, m *metrics.Metrics) domain.Notifier {
	return &notifier{
		mailer:   mailer,
		renderer: renderer,
		qr:       qr,
		logRepo:  logRepo,
		logger:   logger,
		metrics:  m,
	}
}

func (n *notifier) SendRegistrationConfirmation(ctx context.Context, user *domain.User, event *domain.Event) {
	err := n.sendRegistration(user, event)
	n.record(ctx, user, event, domain.NotificationTypeRegistration, err)
}

func (n *notifier) SendAttendanceConfirmation(ctx context.Context, user *domain.User, event *domain.Event) {
	err := n.sendAttendance(user, event)
	n.record(ctx, user, event, domain.NotificationTypeAttendance, err)
}

func (n *notifier) sendRegistration(user *domain.User, event *domain.Event) error {
	qrData := fmt.Sprintf("userId:%d,eventId:%d", user.ID, event.ID)
	qrImage, err := n.qr.DataURL(qrData)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}
	data := &domain.RegistrationEmailData{
		Name:         user.Name,
		EventPurpose: event.Purpose,
		QRImage:      template.URL(qrImage),
		QRData:       qrData,
	}
	subject, htmlBody, textBody, err := n.renderer.Render("registration", data)
	if err != nil {
		return fmt.Errorf("render registration template: %w", err)
	}
	if err := n.mailer.Send(user.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send registration email: %w", err)
	}
	return nil
}

func (n *notifier) sendAttendance(user *domain.User, event *domain.Event) error {
	data := &domain.AttendanceEmailData{
		Name:         user.Name,
		EventPurpose: event.Purpose,
		RecordedAt:   time.Now().Format(time.RFC1123),
	}
	subject, htmlBody, textBody, err := n.renderer.Render("attendance", data)
	if err != nil {
		return fmt.Errorf("render attendance template: %w", err)
	}
	if err := n.mailer.Send(user.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send attendance email: %w", err)
	}
	return nil
}

// record appends the audit row. Log insert failures are themselves only
// logged; notification bookkeeping must never surface to callers.
func (n *notifier) record(ctx context.Context, user *domain.User, event *domain.Event, notifType string, sendErr error) {
	status := domain.NotificationStatusSent
	if sendErr != nil {
		status = domain.NotificationStatusFailed
		n.metrics.NotificationsFailed.Inc()
		n.logger.Error("confirmation email failed",
			"type", notifType, "user_id", user.ID, "event_id", event.ID, "err", sendErr)
	} else {
		n.metrics.NotificationsSent.Inc()
		n.logger.Info("confirmation email sent",
			"type", notifType, "user_id", user.ID, "event_id", event.ID)
	}

	entry := &domain.NotificationLogEntry{
		UserID:  user.ID,
		EventID: event.ID,
		Type:    notifType,
		Status:  status,
	}
	if err := n.logRepo.Create(ctx, entry); err != nil {
		n.logger.Error("failed to append notification log",
			"type", notifType, "user_id", user.ID, "event_id", event.ID, "err", err)
	}
}

package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventattend/internal/delivery/http/helpers"
	"eventattend/internal/delivery/http/middleware"
	"eventattend/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Purpose  string `json:"purpose"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// Validate implements helpers.Validator.
func (r *CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Purpose) == "" {
		errs = append(errs, "Event purpose is required.")
	}
	if r.Date != "" {
		if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			errs = append(errs, "date must be in YYYY-MM-DD format")
		}
	}
	return errs
}

// CreateEventResponse is the success body for POST /events.
type CreateEventResponse struct {
	Message          string `json:"message"`
	EventID          int64  `json:"eventId"`
	RegistrationLink string `json:"registrationLink"`
	QRCode           string `json:"qrCode"`
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event with a self-registration link and QR code.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateEventRequest true "Event details"
// @Success 201 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	adminID, _, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		helpers.WriteMessage(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	var date *time.Time
	if req.Date != "" {
		d, _ := time.Parse("2006-01-02", req.Date)
		date = &d
	}
	var location *string
	if strings.TrimSpace(req.Location) != "" {
		loc := strings.TrimSpace(req.Location)
		location = &loc
	}

	event, link, err := c.Service.Create(r.Context(), adminID, req.Purpose, date, location)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "event creation failed", "err", err)
		helpers.WriteMessage(w, http.StatusInternalServerError, "An internal error occurred while creating the event.")
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, CreateEventResponse{
		Message:          "Event created successfully",
		EventID:          event.ID,
		RegistrationLink: link.Link,
		QRCode:           link.QRCode,
	})
}

// ListEvents godoc
// @Summary List events for the logged-in admin
// @Description Super admins see all events; event admins see their own.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Event
// @Failure 401 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	adminID, role, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		helpers.WriteMessage(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	events, err := c.Service.List(r.Context(), adminID, role)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list events failed", "err", err)
		helpers.WriteMessage(w, http.StatusInternalServerError, "An internal error occurred while fetching events.")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get one event with its registered users
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} domain.EventWithUsers
// @Failure 400 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	adminID, role, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		helpers.WriteMessage(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		helpers.WriteMessage(w, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	result, err := c.Service.Get(r.Context(), eventID, adminID, role)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, "Event not found.")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteMessage(w, http.StatusForbidden, "You are not authorized to view this event.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "get event failed", "err", err)
		helpers.WriteMessage(w, http.StatusInternalServerError, "An internal error occurred while fetching event details.")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

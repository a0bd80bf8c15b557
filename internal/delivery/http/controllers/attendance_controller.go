package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventattend/internal/delivery/http/helpers"
	"eventattend/internal/delivery/http/middleware"
	"eventattend/internal/domain"
)

type AttendanceController struct {
	Logger  *slog.Logger
	Service domain.AttendanceService
}

func NewAttendanceController(logger *slog.Logger, svc domain.AttendanceService) *AttendanceController {
	return &AttendanceController{
		Logger:  logger,
		Service: svc,
	}
}

// RecordAttendanceRequest is the request body for POST /attendance/record.
type RecordAttendanceRequest struct {
	UserID  int64 `json:"userId"`
	EventID int64 `json:"eventId"`
}

// Validate implements helpers.Validator.
func (r *RecordAttendanceRequest) Validate() []string {
	var errs []string
	if r.UserID == 0 {
		errs = append(errs, "userId is required")
	}
	if r.EventID == 0 {
		errs = append(errs, "eventId is required")
	}
	return errs
}

// RecordAttendanceResponse is the success body for POST /attendance/record.
type RecordAttendanceResponse struct {
	Message      string `json:"message"`
	AttendanceID int64  `json:"attendanceId"`
}

// RecordAttendance godoc
// @Summary Record a check-in for a registered user
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.RecordAttendanceRequest true "User and event IDs, typically scanned from a QR code"
// @Success 201 {object} controllers.RecordAttendanceResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse "User not registered for this event"
// @Failure 409 {object} helpers.MessageResponse "Attendance already recorded"
// @Failure 500 {object} helpers.MessageResponse
// @Router /attendance/record [post]
func (c *AttendanceController) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var req RecordAttendanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	rec, err := c.Service.Record(r.Context(), req.UserID, req.EventID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteMessage(w, http.StatusNotFound, "User is not registered for this event.")
		case errors.Is(err, domain.ErrDuplicate):
			helpers.WriteMessage(w, http.StatusConflict, "Attendance has already been recorded for this user.")
		default:
			c.Logger.ErrorContext(r.Context(), "record attendance failed", "err", err)
			helpers.WriteMessage(w, http.StatusInternalServerError, "An internal error occurred while recording attendance.")
		}
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, RecordAttendanceResponse{
		Message:      "Attendance recorded successfully. A confirmation email is on its way.",
		AttendanceID: rec.ID,
	})
}

// ListAttendance godoc
// @Summary List attendance records
// @Description Super admins see all records; event admins see records for their own events.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.AttendanceRecordDetail
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /attendance [get]
func (c *AttendanceController) ListAttendance(w http.ResponseWriter, r *http.Request) {
	adminID, role, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		helpers.WriteMessage(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	records, err := c.Service.List(r.Context(), adminID, role)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list attendance failed", "err", err)
		helpers.WriteMessage(w, http.StatusInternalServerError, "An internal error occurred while fetching attendance records.")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, records)
}

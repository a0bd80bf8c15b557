package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"eventattend/internal/adapters/upload"
	"eventattend/internal/delivery/http/helpers"
	"eventattend/internal/domain"
)

// maxUploadSize caps import uploads at 10MB.
const maxUploadSize = 10 << 20

type UserController struct {
	Logger        *slog.Logger
	Registration  domain.RegistrationService
	Importer      domain.ImportService
	Users         domain.UserRepository
	UploadDir     string
}

func NewUserController(logger *slog.Logger, registration domain.RegistrationService, importer domain.ImportService, users domain.UserRepository, uploadDir string) *UserController {
	return &UserController{
		Logger:       logger,
		Registration: registration,
		Importer:     importer,
		Users:        users,
		UploadDir:    uploadDir,
	}
}

// RegisterUserRequest is the request body for POST /users/register.
type RegisterUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	EventID int64  `json:"eventId"`
}

// Validate implements helpers.Validator.
func (r *RegisterUserRequest) Validate() []string {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" || r.EventID == 0 {
		return []string{"Name, email, and event ID are required."}
	}
	return nil
}

// RegisterUserResponse is the success body for POST /users/register.
type RegisterUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// RegisterUser godoc
// @Summary Register a user for an event
// @Description Public self-registration endpoint reached via an event's registration link.
// @Tags users
// @Accept json
// @Produce json
// @Param body body controllers.RegisterUserRequest true "Registration details"
// @Success 201 {object} controllers.RegisterUserResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse "Event not found"
// @Failure 409 {object} helpers.MessageResponse "Already registered"
// @Failure 500 {object} helpers.MessageResponse
// @Router /users/register [post]
func (c *UserController) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	user, err := c.Registration.Register(r.Context(), req.Name, req.Email, req.EventID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteMessage(w, http.StatusBadRequest, "Please provide a valid email address.")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteMessage(w, http.StatusNotFound, "Event not found.")
		case errors.Is(err, domain.ErrDuplicate):
			helpers.WriteMessage(w, http.StatusConflict, "This email is already registered for this event.")
		default:
			c.Logger.ErrorContext(r.Context(), "user registration failed", "err", err)
			helpers.WriteMessage(w, http.StatusInternalServerError, "An internal error occurred during registration.")
		}
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, RegisterUserResponse{
		Message: "User registered successfully. Please check your email for the QR code.",
		UserID:  user.ID,
	})
}

// ImportUsersResponse is the success body for POST /users/import.
type ImportUsersResponse struct {
	Message       string `json:"message"`
	ImportedCount int    `json:"importedCount"`
}

// ImportUsers godoc
// @Summary Bulk import users from a CSV file
// @Description All-or-nothing import: any invalid row rejects the whole batch and the response lists every failing row.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file with name, email, eventId columns"
// @Success 201 {object} controllers.ImportUsersResponse
// @Failure 400 {object} helpers.ValidationErrorResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /users/import [post]
func (c *UserController) ImportUsers(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		helpers.WriteMessage(w, http.StatusBadRequest, "File too large or invalid form.")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		helpers.WriteMessage(w, http.StatusBadRequest, "No file uploaded.")
		return
	}
	defer file.Close()

	path, err := upload.SaveTemp(c.UploadDir, file)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "failed to spool upload", "err", err)
		helpers.WriteMessage(w, http.StatusInternalServerError, "An internal error occurred during user import.")
		return
	}
	// The upload is removed on every exit path, success or failure.
	defer func() {
		if err := os.Remove(path); err != nil {
			c.Logger.ErrorContext(r.Context(), "failed to delete uploaded file", "path", path, "err", err)
		}
	}()

	rows, err := upload.ParseFile(path)
	if err != nil {
		helpers.WriteMessage(w, http.StatusBadRequest, "The uploaded file is empty or in an invalid format.")
		return
	}

	result, err := c.Importer.ImportUsers(r.Context(), rows)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyBatch) {
			helpers.WriteMessage(w, http.StatusBadRequest, "The uploaded file is empty or in an invalid format.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "user import failed", "err", err)
		helpers.WriteMessage(w, http.StatusInternalServerError, "An internal error occurred during user import.")
		return
	}

	if result.Failed() {
		helpers.WriteJSON(w, http.StatusBadRequest, helpers.ValidationErrorResponse{
			Message: "Import failed due to validation errors. No users were imported.",
			Errors:  result.ErrorStrings(),
		})
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, ImportUsersResponse{
		Message:       fmt.Sprintf("%d users imported successfully.", result.ImportedCount),
		ImportedCount: result.ImportedCount,
	})
}

// ListUsers godoc
// @Summary List all registered users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.User
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /users [get]
func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListAll(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list users failed", "err", err)
		helpers.WriteMessage(w, http.StatusInternalServerError, "Error fetching users.")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, users)
}

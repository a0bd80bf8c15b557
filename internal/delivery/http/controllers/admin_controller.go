package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventattend/internal/delivery/http/helpers"
	"eventattend/internal/domain"
)

type AdminController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterAdminRequest is the request body for POST /admins/register.
type RegisterAdminRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Institution string `json:"institution"`
	Role        string `json:"role"`
}

// Validate implements helpers.Validator.
func (r *RegisterAdminRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// RegisterAdminResponse is the success body for POST /admins/register.
type RegisterAdminResponse struct {
	Message string `json:"message"`
	AdminID int64  `json:"adminId"`
}

// RegisterAdmin godoc
// @Summary Register a new admin account
// @Tags admins
// @Accept json
// @Produce json
// @Param body body controllers.RegisterAdminRequest true "Admin details"
// @Success 201 {object} controllers.RegisterAdminResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 409 {object} helpers.MessageResponse "Email already registered"
// @Failure 500 {object} helpers.MessageResponse
// @Router /admins/register [post]
func (c *AdminController) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req RegisterAdminRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	admin, err := c.Service.Register(r.Context(), domain.RegisterAdminInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Institution: req.Institution,
		Role:        req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrDuplicate) {
			helpers.WriteMessage(w, http.StatusConflict, "An admin with this email already exists.")
			return
		}
		c.Logger.ErrorContext(r.Context(), "admin registration failed", "err", err)
		helpers.WriteMessage(w, http.StatusInternalServerError, "An internal error occurred during registration.")
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, RegisterAdminResponse{
		Message: "Admin registered successfully",
		AdminID: admin.ID,
	})
}

// LoginRequest is the request body for POST /admins/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements helpers.Validator.
func (r *LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the success body for POST /admins/login.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login godoc
// @Summary Log in as an admin
// @Tags admins
// @Accept json
// @Produce json
// @Param body body controllers.LoginRequest true "Credentials"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse "Invalid credentials"
// @Failure 500 {object} helpers.MessageResponse
// @Router /admins/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	token, role, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteMessage(w, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "admin login failed", "err", err)
		helpers.WriteMessage(w, http.StatusInternalServerError, "An internal error occurred during login.")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, Role: role})
}

// ListAdmins godoc
// @Summary List all admin accounts
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Admin
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /admins [get]
func (c *AdminController) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list admins failed", "err", err)
		helpers.WriteMessage(w, http.StatusInternalServerError, "An internal error occurred while fetching admins.")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, admins)
}

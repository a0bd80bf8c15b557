package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventattend/internal/delivery/http/controllers"
	"eventattend/internal/delivery/http/middleware"
	"eventattend/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	adminController *controllers.AdminController,
	eventController *controllers.EventController,
	userController *controllers.UserController,
	attendanceController *controllers.AttendanceController,
) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(verifier, logger)
	adminOnly := middleware.RequireRole(domain.RoleSuperAdmin)
	anyAdmin := middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleEventAdmin)

	// Admin accounts
	mux.HandleFunc("POST /admins/register", adminController.RegisterAdmin)
	mux.HandleFunc("POST /admins/login", adminController.Login)
	mux.HandleFunc("GET /admins", auth(adminOnly(adminController.ListAdmins)))

	// Events
	mux.HandleFunc("POST /events", auth(eventController.CreateEvent))
	mux.HandleFunc("GET /events", auth(eventController.ListEvents))
	mux.HandleFunc("GET /events/{eventID}", auth(eventController.GetEvent))

	// Users: self-registration is public (reached via registration links);
	// import and listing are restricted.
	mux.HandleFunc("POST /users/register", userController.RegisterUser)
	mux.HandleFunc("POST /users/import", auth(anyAdmin(userController.ImportUsers)))
	mux.HandleFunc("GET /users", auth(anyAdmin(userController.ListUsers)))

	// Attendance
	mux.HandleFunc("POST /attendance/record", auth(anyAdmin(attendanceController.RecordAttendance)))
	mux.HandleFunc("GET /attendance", auth(anyAdmin(attendanceController.ListAttendance)))

	// Observability and docs
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

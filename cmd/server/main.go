package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"eventattend/config"
	_ "eventattend/docs"
	"eventattend/internal/adapters/auth"
	"eventattend/internal/adapters/email"
	"eventattend/internal/adapters/qr"
	delivery "eventattend/internal/delivery/http"
	"eventattend/internal/delivery/http/controllers"
	"eventattend/internal/delivery/http/middleware"
	"eventattend/internal/metrics"
	"eventattend/internal/repository/postgres"
	"eventattend/internal/services"
)

const bcryptCost = 10

// @title Event Attendance API
// @version 1.0
// @description Event registration and attendance management backend.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Repositories
	adminRepo := postgres.NewAdminRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	notificationLogRepo := postgres.NewNotificationLogRepository(db)
	importStore := postgres.NewImportStore(db)

	// Adapters
	hasher := auth.NewBcryptHasher(bcryptCost)
	tokens := auth.NewJWTManager(cfg.JWTSecret)
	qrGen := qr.NewGenerator()
	mailer, err := email.NewMailer(cfg.Email)
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}
	renderer := email.NewTemplateRenderer()

	// Services
	notifier := services.NewNotifier(mailer, renderer, qrGen, notificationLogRepo, logger, m)
	adminService := services.NewAdminService(adminRepo, hasher, tokens, cfg.JWTExpiry)
	eventService := services.NewEventService(eventRepo, userRepo, qrGen, cfg.FrontendURL)
	registrationService := services.NewRegistrationService(importStore, notifier, logger, m)
	importService := services.NewImportService(importStore, notifier, logger, m)
	attendanceService := services.NewAttendanceService(attendanceRepo, userRepo, eventRepo, notifier, logger)

	// Controllers
	adminController := controllers.NewAdminController(logger, adminService)
	eventController := controllers.NewEventController(logger, eventService)
	userController := controllers.NewUserController(logger, registrationService, importService, userRepo, cfg.UploadDir)
	attendanceController := controllers.NewAttendanceController(logger, attendanceService)

	mux := delivery.NewRouter(logger, tokens, adminController, eventController, userController, attendanceController)
	handler := middleware.LoggingMiddleware(logger,
		middleware.MetricsMiddleware(m, mux))

	addr := ":" + cfg.Port
	logger.Info("server starting", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

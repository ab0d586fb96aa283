package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"wealthmindset/config"
	_ "wealthmindset/docs"
	"wealthmindset/internal/adapters/auth"
	"wealthmindset/internal/adapters/email"
	"wealthmindset/internal/catalog"
	delivery "wealthmindset/internal/delivery/http"
	"wealthmindset/internal/delivery/http/controllers"
	"wealthmindset/internal/delivery/http/middleware"
	"wealthmindset/internal/repository/postgres"
	"wealthmindset/internal/services"
)

// @title Wealth Mindset API
// @version 1.0
// @description Lead capture, event registration, and admin dashboard for the Wealth Mindset seminar series.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancelPing()
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	cancelPing()

	eventCatalog, err := catalog.Load(cfg.EventsFile)
	if err != nil {
		logger.Error("failed to load event catalog", "error", err, "file", cfg.EventsFile)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKey,
			SecretAccessKey:    cfg.SESSecretKey,
			InsecureSkipVerify: cfg.SESInsecureTLS,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}

	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		logger.Error("failed to parse email templates", "error", err)
		os.Exit(1)
	}

	// Repositories
	leadRepo := postgres.NewLeadRepository(db)
	regRepo := postgres.NewRegistrationRepository(db)

	// Services
	jwtAuth := auth.NewJWTAuth(cfg.JWTSecret, cfg.TokenExpiry)
	emailService := services.NewEmailService(mailer, renderer)
	leadService := services.NewLeadService(leadRepo, emailService, logger)
	registrationService := services.NewRegistrationService(
		regRepo,
		eventCatalog,
		emailService,
		services.DispatchPolicy(cfg.EmailDispatch),
		logger,
	)
	dashboardService := services.NewDashboardService(leadRepo, regRepo)
	adminService := services.NewAdminService(cfg.AdminPasswordHash, auth.NewBcryptVerifier(), jwtAuth)

	// Controllers
	leadController := controllers.NewLeadController(logger, leadService)
	registrationController := controllers.NewRegistrationController(logger, registrationService)
	eventController := controllers.NewEventController(eventCatalog)
	adminController := controllers.NewAdminController(logger, adminService, dashboardService)

	mux := delivery.NewRouter(leadController, registrationController, eventController, adminController, jwtAuth)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop
	logger.Info("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}

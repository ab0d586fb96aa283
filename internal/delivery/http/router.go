package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"wealthmindset/internal/delivery/http/controllers"
	"wealthmindset/internal/delivery/http/middleware"
	"wealthmindset/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Method-qualified patterns mean any other verb on a route answers 405.
func NewRouter(
	leadController *controllers.LeadController,
	registrationController *controllers.RegistrationController,
	eventController *controllers.EventController,
	adminController *controllers.AdminController,
	tokenVerifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Public API
	mux.HandleFunc("POST /api/leads", leadController.Submit)
	mux.HandleFunc("POST /api/registrations", registrationController.Submit)
	mux.HandleFunc("GET /api/events", eventController.List)

	// Admin
	requireAdmin := middleware.RequireAdmin(tokenVerifier)
	mux.HandleFunc("POST /admin/login", adminController.Login)
	mux.HandleFunc("GET /admin/dashboard", requireAdmin(adminController.Overview))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

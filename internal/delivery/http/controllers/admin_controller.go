package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"wealthmindset/internal/delivery/http/helpers"
	"wealthmindset/internal/domain"
)

type AdminController struct {
	Logger    *slog.Logger
	Admin     domain.AdminService
	Dashboard domain.DashboardService
}

func NewAdminController(logger *slog.Logger, admin domain.AdminService, dashboard domain.DashboardService) *AdminController {
	return &AdminController{
		Logger:    logger,
		Admin:     admin,
		Dashboard: dashboard,
	}
}

// LoginRequest is the request body for POST /admin/login.
type LoginRequest struct {
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []string {
	if r.Password == "" {
		return []string{"password is required"}
	}
	return nil
}

// LoginResponse is the success payload for POST /admin/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary Admin login
// @Description Verifies the admin password and issues a short-lived session token.
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body controllers.LoginRequest true "Credentials"
// @Success 200 {object} helpers.APIResponse{data=controllers.LoginResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	token, err := c.Admin.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "incorrect password")
			return
		}
		c.Logger.ErrorContext(r.Context(), "admin login failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token})
}

// Overview godoc
// @Summary Admin dashboard read model
// @Description Returns all leads and registrations (newest first) with derived aggregates: grouped counts, the 30-day activity histogram, and totals.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.DashboardOverview}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/dashboard [get]
func (c *AdminController) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := c.Dashboard.Overview(r.Context())
	if err != nil {
		var storeErr *domain.StoreError
		if errors.As(err, &storeErr) {
			c.Logger.ErrorContext(r.Context(), "dashboard read failed",
				"code", storeErr.Code, "message", storeErr.Message, "detail", storeErr.Detail)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, storeErr.Message)
			return
		}
		c.Logger.ErrorContext(r.Context(), "dashboard build failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, overview)
}

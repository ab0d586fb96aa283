package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"wealthmindset/internal/delivery/http/helpers"
	"wealthmindset/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitRegistrationResponse is the success body for POST /api/registrations.
// EmailError is advisory: present when the registration was stored but the
// confirmation email could not be sent.
// swagger:model SubmitRegistrationResponse
type SubmitRegistrationResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Lead       LeadSummary `json:"lead"`
	Amount     float64     `json:"amount"`
	Currency   string      `json:"currency"`
	Reference  string      `json:"reference,omitempty"`
	Status     string      `json:"status"`
	EmailError string      `json:"emailError,omitempty"`
}

// Submit godoc
// @Summary Register for an event
// @Description Validates and stores an event registration with its payment obligation, then dispatches the confirmation email per the configured policy. A failed email never fails the registration; it surfaces as the emailError field.
// @Tags public
// @Accept json
// @Produce json
// @Param payload body domain.RegistrationSubmission true "Registration payload"
// @Success 200 {object} controllers.SubmitRegistrationResponse
// @Failure 400 {object} controllers.SubmissionErrorResponse "Missing required fields"
// @Failure 500 {object} controllers.SubmissionErrorResponse "Store or internal error"
// @Router /api/registrations [post]
func (c *RegistrationController) Submit(w http.ResponseWriter, r *http.Request) {
	var sub domain.RegistrationSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, SubmissionErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	result, err := c.Service.Submit(r.Context(), &sub)
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	reg := result.Registration
	resp := SubmitRegistrationResponse{
		Success: true,
		Message: "Registration successful",
		Lead: LeadSummary{
			ID:        reg.ID,
			FirstName: reg.FirstName,
			Email:     reg.Email,
		},
		Amount:     reg.Amount,
		Currency:   reg.Currency,
		Status:     string(reg.PaymentStatus),
		EmailError: result.EmailError,
	}
	if reg.PaymentReference != nil {
		resp.Reference = *reg.PaymentReference
	}
	helpers.WriteJSON(w, http.StatusOK, resp)
}

func (c *RegistrationController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		helpers.WriteJSON(w, http.StatusBadRequest, SubmissionErrorResponse{
			Error: "Missing required fields: " + strings.Join(vErr.Missing, ", "),
		})
		return
	}
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		c.Logger.ErrorContext(r.Context(), "registration insert failed",
			"code", storeErr.Code, "message", storeErr.Message, "detail", storeErr.Detail)
		helpers.WriteJSON(w, http.StatusInternalServerError, SubmissionErrorResponse{
			Error:   "Database Error: " + storeErr.Message,
			Details: storeErr.Detail,
		})
		return
	}
	c.Logger.ErrorContext(r.Context(), "registration submission failed", "path", r.URL.Path, "err", err)
	helpers.WriteJSON(w, http.StatusInternalServerError, SubmissionErrorResponse{
		Error: "Internal server error",
	})
}

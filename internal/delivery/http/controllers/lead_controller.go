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

type LeadController struct {
	Logger  *slog.Logger
	Service domain.LeadService
}

func NewLeadController(logger *slog.Logger, svc domain.LeadService) *LeadController {
	return &LeadController{
		Logger:  logger,
		Service: svc,
	}
}

// LeadSummary echoes the stored row's identity back to the submitting form.
type LeadSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
}

// SubmitLeadResponse is the success body for POST /api/leads.
// swagger:model SubmitLeadResponse
type SubmitLeadResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Lead    LeadSummary `json:"lead"`
}

// SubmissionErrorResponse is the failure body for the public submission endpoints.
// Details carries the datastore's native detail on store errors.
// swagger:model SubmissionErrorResponse
type SubmissionErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Submit godoc
// @Summary Capture a lead
// @Description Validates and stores a lead from the landing-page form, then dispatches the welcome email fire-and-forget. The response never depends on the email outcome.
// @Tags public
// @Accept json
// @Produce json
// @Param payload body domain.LeadSubmission true "Lead payload"
// @Success 200 {object} controllers.SubmitLeadResponse
// @Failure 400 {object} controllers.SubmissionErrorResponse "Missing required fields"
// @Failure 500 {object} controllers.SubmissionErrorResponse "Store or internal error"
// @Router /api/leads [post]
func (c *LeadController) Submit(w http.ResponseWriter, r *http.Request) {
	var sub domain.LeadSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, SubmissionErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	lead, err := c.Service.Submit(r.Context(), &sub)
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, SubmitLeadResponse{
		Success: true,
		Message: "Lead captured successfully",
		Lead: LeadSummary{
			ID:        lead.ID,
			FirstName: lead.FirstName,
			Email:     lead.Email,
		},
	})
}

func (c *LeadController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		helpers.WriteJSON(w, http.StatusBadRequest, SubmissionErrorResponse{
			Error: "Missing required fields: " + strings.Join(vErr.Missing, ", "),
		})
		return
	}
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		c.Logger.ErrorContext(r.Context(), "lead insert failed",
			"code", storeErr.Code, "message", storeErr.Message, "detail", storeErr.Detail)
		helpers.WriteJSON(w, http.StatusInternalServerError, SubmissionErrorResponse{
			Error:   "Database Error: " + storeErr.Message,
			Details: storeErr.Detail,
		})
		return
	}
	c.Logger.ErrorContext(r.Context(), "lead submission failed", "path", r.URL.Path, "err", err)
	helpers.WriteJSON(w, http.StatusInternalServerError, SubmissionErrorResponse{
		Error: "Internal server error",
	})
}

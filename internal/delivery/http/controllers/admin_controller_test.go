package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wealthmindset/internal/delivery/http/helpers"
	"wealthmindset/internal/domain"
)

type mockAdminService struct {
	token string
	err   error
}

func (m *mockAdminService) Login(ctx context.Context, password string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

type mockDashboardService struct {
	overview *domain.DashboardOverview
	err      error
}

func (m *mockDashboardService) Overview(ctx context.Context) (*domain.DashboardOverview, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.overview, nil
}

func TestAdminController_Login_Success(t *testing.T) {
	ctrl := NewAdminController(discardLogger(), &mockAdminService{token: "jwt-token"}, &mockDashboardService{})

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"secret"}`))
	w := httptest.NewRecorder()

	ctrl.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
}

func TestAdminController_Login_WrongPassword(t *testing.T) {
	ctrl := NewAdminController(discardLogger(), &mockAdminService{err: domain.ErrInvalidCredentials}, &mockDashboardService{})

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"password":"nope"}`))
	w := httptest.NewRecorder()

	ctrl.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAdminController_Login_MissingPassword(t *testing.T) {
	ctrl := NewAdminController(discardLogger(), &mockAdminService{token: "jwt"}, &mockDashboardService{})

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	ctrl.Login(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestAdminController_Overview_Success(t *testing.T) {
	overview := &domain.DashboardOverview{
		TotalLeads:    2,
		DailyActivity: make([]domain.DayBucket, domain.ActivityDays),
	}
	ctrl := NewAdminController(discardLogger(), &mockAdminService{}, &mockDashboardService{overview: overview})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := httptest.NewRecorder()

	ctrl.Overview(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Data  *domain.DashboardOverview `json:"data"`
		Error *helpers.APIError         `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
	if resp.Data.TotalLeads != 2 || len(resp.Data.DailyActivity) != domain.ActivityDays {
		t.Fatalf("unexpected overview %+v", resp.Data)
	}
}

func TestAdminController_Overview_StoreError(t *testing.T) {
	ctrl := NewAdminController(discardLogger(), &mockAdminService{}, &mockDashboardService{
		err: &domain.StoreError{Message: "connection refused"},
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := httptest.NewRecorder()

	ctrl.Overview(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Message != "connection refused" {
		t.Fatalf("expected store message passed through, got %v", resp.Error)
	}
}

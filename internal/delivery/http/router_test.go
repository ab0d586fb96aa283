package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"wealthmindset/internal/delivery/http/controllers"
)

type staticVerifier struct{}

func (staticVerifier) Verify(token string) (string, error) { return "admin", nil }

func newTestRouter() *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(
		controllers.NewLeadController(logger, nil),
		controllers.NewRegistrationController(logger, nil),
		controllers.NewEventController(nil),
		controllers.NewAdminController(logger, nil, nil),
		staticVerifier{},
	)
}

// Non-submission verbs on the submission routes must answer 405.
func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/leads"},
		{http.MethodPut, "/api/leads"},
		{http.MethodDelete, "/api/leads"},
		{http.MethodGet, "/api/registrations"},
		{http.MethodPatch, "/api/registrations"},
		{http.MethodPost, "/api/events"},
		{http.MethodGet, "/admin/login"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusMethodNotAllowed {
				t.Fatalf("expected 405, got %d", w.Code)
			}
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campaign-prediction-api/config"
	"campaign-prediction-api/services"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService, err := services.NewAuthService(config.AuthConfig{
		ServiceKey:  "test-service-key",
		JWTSecret:   "test-secret",
		ExpiryHours: 1,
	})
	if err != nil {
		t.Fatalf("NewAuthService failed: %v", err)
	}

	r := gin.New()
	r.POST("/api/auth/token", NewAuthHandler(authService).IssueToken)
	return r, authService
}

func TestIssueToken(t *testing.T) {
	r, authService := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/token",
		strings.NewReader(`{"service_key": "test-service-key"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("token should not be empty")
	}
	if _, err := authService.ValidateToken(resp.Token); err != nil {
		t.Errorf("issued token should validate: %v", err)
	}
}

func TestIssueTokenWrongKey(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/token",
		strings.NewReader(`{"service_key": "wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestIssueTokenMissingKey(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/token", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

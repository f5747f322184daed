package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campaign-prediction-api/config"
	"campaign-prediction-api/services"

	"github.com/gin-gonic/gin"
)

func newLiveRouter(t *testing.T) (*gin.Engine, *services.AuthService) {
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

	// Zero-value cache service has no Redis client: Available() is false.
	r := gin.New()
	r.GET("/api/history/live", LiveHistory(&services.CacheService{}, authService))
	return r, authService
}

func TestLiveHistoryMissingToken(t *testing.T) {
	r, _ := newLiveRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/history/live", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestLiveHistoryInvalidToken(t *testing.T) {
	r, _ := newLiveRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/history/live?token=not.a.token", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestLiveHistoryFeedUnavailable(t *testing.T) {
	r, authService := newLiveRouter(t)

	token, err := authService.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/history/live?token="+token, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

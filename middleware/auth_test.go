package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campaign-prediction-api/config"
	"campaign-prediction-api/services"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter(t *testing.T) (*gin.Engine, *services.AuthService) {
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
	r.GET("/protected", RequireService(authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, authService
}

func TestRequireServiceValidToken(t *testing.T) {
	r, authService := newProtectedRouter(t)

	token, err := authService.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRequireServiceMissingHeader(t *testing.T) {
	r, _ := newProtectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireServiceBadToken(t *testing.T) {
	r, _ := newProtectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

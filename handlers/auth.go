package handlers

import (
	"net/http"

	"campaign-prediction-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type TokenRequest struct {
	ServiceKey string `json:"service_key" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken exchanges the configured service key for a bearer token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.authService.VerifyServiceKey(req.ServiceKey) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid service key"})
		return
	}

	token, err := h.authService.GenerateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

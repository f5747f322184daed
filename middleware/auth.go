package middleware

import (
	"net/http"
	"strings"

	"campaign-prediction-api/services"

	"github.com/gin-gonic/gin"
)

// RequireService admits any caller holding a valid service token. The store
// has exactly one caller class, so there is nothing finer-grained to check.
func RequireService(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if _, err := authService.ValidateToken(tokenStr); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Next()
	}
}

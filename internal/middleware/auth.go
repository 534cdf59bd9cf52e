package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thoughtcode-25/DIGI-FARM/internal/security"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

// Context keys set by RequireAuth.
const (
	ContextFarmerID = "farmer_id"
	ContextUsername = "username"
)

// RequireAuth validates the Bearer token and puts the farmer identity on
// the request context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing Authorization header",
				"code":  errors.ErrCodeUnauthorized,
			})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header must use the Bearer scheme",
				"code":  errors.ErrCodeUnauthorized,
			})
			return
		}

		claims, err := security.ValidateJWT(token, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired session token",
				"code":  errors.ErrCodeUnauthorized,
			})
			return
		}

		c.Set(ContextFarmerID, claims.FarmerID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"patients-api/internal/auth"
	"patients-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TokenAuth validates the shared API token from the API_TOKEN header.
// Rejected requests terminate here, before any handler logic runs.
func TokenAuth(store *auth.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract token from API_TOKEN header
		token := c.GetHeader("API_TOKEN")
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "API token is required in API_TOKEN header")
			c.Abort()
			return
		}

		// Trim any whitespace
		token = strings.TrimSpace(token)

		username, ok := store.Verify(token)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid API token")
			c.Abort()
			return
		}

		// Set resolved identity in context for use by handlers
		c.Set("username", username)

		c.Next()
	}
}

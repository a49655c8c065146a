package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/storefront/domain"
)

// UsernameKey is the context key for the authenticated username
const UsernameKey = "username"

// RequireSession rejects requests while the session store holds no authenticated session
func RequireSession(sessions domain.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := sessions.Snapshot()
		if !snap.IsAuthenticated() {
			_ = c.Error(domain.ErrNotAuthenticated)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(UsernameKey, snap.User.Username)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"optiqa/pkg/utils"
)

// SessionTokenMiddleware guards everything behind /wizard/start. The token
// issued at start carries the session ID; handlers read it from the context.
func SessionTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateSessionToken(tokenString)
		if err != nil || claims.SessionID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session token")
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Next()
	}
}

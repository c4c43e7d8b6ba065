package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/flixme/flixme-api/internal/domain/repository"
	"github.com/flixme/flixme-api/pkg/helpers"
	"github.com/flixme/flixme-api/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUsernameKey = "username"
	CtxUserKey     = "user"
)

// Auth is the bearer-token guard. It extracts the token from the
// Authorization header, verifies signature and expiry, resolves the username
// claim to a user record, and attaches both to the context. Authentication is
// stateless; the token is the full credential.
func Auth(jwt *helpers.JWTManager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}

		u, err := users.GetByUsername(c.Request.Context(), claims.Username)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "unknown user", nil)
			return
		}

		c.Set(CtxUsernameKey, u.Username)
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

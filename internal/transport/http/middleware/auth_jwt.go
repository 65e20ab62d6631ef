package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-job-board/internal/core/auth"
	resp "go-job-board/internal/transport/http/response"
)

// ContextUserID is the gin context key the verified user id is stored under.
const ContextUserID = "userId"

// AuthJWT guards a route group behind bearer-token auth. The scheme is
// matched case-insensitively; browsers and the SPA send "Bearer", the
// legacy clients send "bearer".
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if ah == "" {
			resp.AbortError(c, http.StatusUnauthorized, "authorization token required")
			return
		}
		scheme, token, ok := strings.Cut(ah, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
			resp.AbortError(c, http.StatusUnauthorized, "authorization token required")
			return
		}
		claims, err := j.Parse(strings.TrimSpace(token))
		if err != nil {
			resp.AbortError(c, http.StatusUnauthorized, "request is not authorized")
			return
		}
		c.Set(ContextUserID, claims.UID)
		c.Next()
	}
}

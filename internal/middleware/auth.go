package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authService "github.com/hackdesk/hackdesk/internal/auth/service"
)

// principalKey is the gin context key holding the authenticated email.
const principalKey = "principal_email"

// Auth returns a middleware that resolves the bearer session token and stores
// the principal email in the request context. Requests without a valid token
// are rejected with 401 UNAUTHENTICATED.
func Auth(resolver authService.Service, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			unauthenticated(c)
			return
		}

		email, err := resolver.ResolvePrincipal(c.Request.Context(), token)
		if err != nil {
			logger.Debugw("session token rejected", "path", c.Request.URL.Path, "error", err)
			unauthenticated(c)
			return
		}

		c.Set(principalKey, email)
		c.Next()
	}
}

// Principal returns the authenticated email set by Auth, or empty string.
func Principal(c *gin.Context) string {
	value, ok := c.Get(principalKey)
	if !ok {
		return ""
	}
	email, _ := value.(string)
	return email
}

func unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHENTICATED",
			"message": "missing or invalid session token",
		},
	})
}

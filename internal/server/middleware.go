package server

import (
	"errors"
	"net/http"
	"time"

	"art-auction/internal/auth"
	"art-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware verifies a bearer token when one is sent. Requests without a
// token, including a bare "Bearer" scheme, continue anonymously; a nil verifier disables identity checks entirely.
func IdentityMiddleware(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if verifier == nil || header == "" {
			c.Next()
			return
		}

		claims, err := verifier.Verify(header)
		if errors.Is(err, auth.ErrMissingToken) {
			c.Next()
			return
		}
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid or expired token")
			utils.Warn("IdentityMiddleware: token rejected", map[string]any{"path": c.Request.URL.Path, "error": err.Error()})
			c.Abort()
			return
		}
		auth.SetIdentity(c, claims)
		c.Next()
	}
}

// RequireUser rejects anonymous callers when identity is enabled
func RequireUser(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Next()
			return
		}
		if _, ok := auth.UserID(c); !ok {
			utils.JSONError(c, http.StatusUnauthorized, auth.ErrMissingToken, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers when identity is enabled
func RequireAdmin(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Next()
			return
		}
		if _, ok := auth.UserID(c); !ok {
			utils.JSONError(c, http.StatusUnauthorized, auth.ErrMissingToken, "authentication required")
			c.Abort()
			return
		}
		if !auth.IsAdmin(c) {
			utils.JSONError(c, http.StatusForbidden, errors.New("admin role required"), "access denied: admin only")
			c.Abort()
			return
		}
		c.Next()
	}
}

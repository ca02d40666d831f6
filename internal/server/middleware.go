package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"service-market/internal/auth"
	"service-market/utils"
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

// AuthRequired validates the bearer credential and injects the caller's
// identity and role into the request context. Core operations take
// identity as explicit arguments; this middleware is the only place the
// token is decoded.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credential"})
			return
		}

		claims, err := auth.ValidateToken(token, secret)
		if err != nil {
			utils.Warn("rejected credential", map[string]any{"path": c.Request.URL.Path, "error": err.Error()})
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credential"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// bearerToken extracts the credential from the Authorization header, or
// from the token query parameter for websocket upgrades where browsers
// cannot set headers.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

package httpserver

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopapi/internal/domain"
	"shopapi/internal/logging"
)

const userCtxKey = "authUser"

// requestLogger injects a request-scoped logger and writes one record per
// request with method, route, status and duration.
func requestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header("X-Request-Id", reqID)

		l := base.With(
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"remote", c.ClientIP(),
		)
		logging.With(c, l)

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"status", status,
			"dur_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}
		if status >= http.StatusInternalServerError {
			l.Error("http_request", attrs...)
			return
		}
		l.Info("http_request", attrs...)
	}
}

// authRequired validates the bearer token and stores the resolved user in the
// gin context for downstream handlers.
func authRequired(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondErrorCode(c, http.StatusUnauthorized, codeUnauthorized, "Missing Authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondErrorCode(c, http.StatusUnauthorized, codeUnauthorized, "Invalid Authorization header format")
			return
		}
		user, err := svc.Validate(parts[1])
		if err != nil {
			respondErrorCode(c, http.StatusUnauthorized, codeUnauthorized, "Invalid or expired token")
			return
		}
		c.Set(userCtxKey, user)
		c.Next()
	}
}

// currentUser returns the authenticated user placed by authRequired.
func currentUser(c *gin.Context) (domain.User, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return domain.User{}, false
	}
	u, ok := v.(domain.User)
	return u, ok
}

// bearerToken extracts the raw token from the Authorization header, if any.
func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

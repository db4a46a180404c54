package middleware

import (
	"log/slog"
	"strings"

	"moviesapi/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
)

// RequestID reuses the caller's X-Request-Id or assigns a new one, echoes it on the
// response and stores a logger carrying it on the request context.
func RequestID(logger *slog.Logger) gin.HandlerFunc {
	return requestIDWithGenerator(logger, uuid.NewString)
}

func requestIDWithGenerator(logger *slog.Logger, generate func() string) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = generate()
		}

		ctx := logging.ContextWithRequestID(c.Request.Context(), id)
		ctx = logging.ContextWithLogger(ctx, logger.With("request_id", id))
		c.Request = c.Request.WithContext(ctx)

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" outside of it.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

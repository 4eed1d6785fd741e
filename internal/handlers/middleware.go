package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/justsurfingit/AI-HR-Funnel/internal/llm"
	"github.com/justsurfingit/AI-HR-Funnel/pkg/apierr"
	"github.com/justsurfingit/AI-HR-Funnel/pkg/logger"
)

// RequestID tags every request with a uuid, echoed in the X-Request-ID
// header and carried in the request context for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// RequestLogger logs one line per request after it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"request_id", logger.GetRequestID(c.Request.Context()),
		}
		if c.Writer.Status() >= 500 {
			slog.Error("request", attrs...)
		} else {
			slog.Info("request", attrs...)
		}
	}
}

// respondError converts service errors into the uniform JSON error body.
func respondError(c *gin.Context, err error) {
	requestID := logger.GetRequestID(c.Request.Context())

	var apiErr *apierr.ApiError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode(), apiErr.WithRequestID(requestID))
		return
	}

	var genErr *llm.GenerationError
	if errors.As(err, &genErr) {
		slog.Error("generation failed", "error", genErr, "request_id", requestID)
		body := apierr.Generation(genErr.Detail).WithRequestID(requestID)
		c.JSON(body.StatusCode(), body)
		return
	}

	slog.Error("unhandled error", "error", err, "request_id", requestID)
	c.JSON(500, apierr.Internal("unexpected error").WithRequestID(requestID))
}

// bindError wraps gin binding failures into the validation error shape.
func bindError(c *gin.Context, err error) {
	respondError(c, apierr.Validation(err.Error()))
}

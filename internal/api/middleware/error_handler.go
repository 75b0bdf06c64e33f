package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadhub/internal/apperr"
)

type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorHandler renders the last error a handler attached with c.Error.
// Domain errors map through their Kind; anything else is a 500 and its text
// is kept out of the response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var domainErr *apperr.Error
		if errors.As(err, &domainErr) {
			status := domainErr.HTTPStatus()
			if status >= http.StatusInternalServerError {
				slog.ErrorContext(c.Request.Context(), "Request failed", "error", err, "path", c.FullPath(), "request_id", c.GetString(RequestIDKey))
			}
			c.JSON(status, ErrorResponse{Error: domainErr.Message, Details: domainErr.Details})
			return
		}

		slog.ErrorContext(c.Request.Context(), "Unhandled error", "error", err, "path", c.FullPath(), "request_id", c.GetString(RequestIDKey))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

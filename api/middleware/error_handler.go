// api/middleware/error_handler.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Annany2002/servo-panel/internal/auth"
	"github.com/Annany2002/servo-panel/internal/render"
)

// ErrorHandler creates a Gin middleware for centralized error handling.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// Only the last error decides the response.
		err := c.Errors.Last().Err
		customLog.WithField("request_id", c.GetString(RequestIDKey)).
			Errorf("[ErrorHandler] Detected error: %v | Type: %T", err, err)

		var statusCode int
		var userMessage string

		switch {
		case errors.Is(err, render.ErrTemplateNotFound),
			errors.Is(err, render.ErrTemplateRender):
			statusCode = http.StatusInternalServerError
			userMessage = "Failed to render page."
		case errors.Is(err, auth.ErrSessionInvalid):
			statusCode = http.StatusBadRequest
			userMessage = "Invalid session."
		default:
			statusCode = http.StatusInternalServerError
			userMessage = "An unexpected internal server error occurred."
		}

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(statusCode, gin.H{"error": userMessage})
		} else {
			customLog.Warnln("[ErrorHandler] Response already written before handling error.")
		}
	}
}

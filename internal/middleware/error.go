package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/1RJB/green-neighbourhood-backend/pkg/errors"
	"github.com/1RJB/green-neighbourhood-backend/pkg/logger"
)

// ErrorHandlerMiddleware handles errors and panics
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				// Log panic stack trace
				stack := string(debug.Stack())
				logger.Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Str("stack", stack).
					Msg("Panic recovered")

				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "Internal Server Error",
					"message": "An unexpected error occurred",
				})
				c.Abort()
			}
		}()

		c.Next()

		// Handle errors attached to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			// Check if it's our custom AppError
			if appErr, ok := err.(*errors.AppError); ok {
				c.JSON(appErr.Code, gin.H{
					"error": appErr.Message,
					"kind":  appErr.Kind,
				})
				return
			}

			logger.Error().Err(err).Msg("Unhandled request error")

			// Don't expose internal errors to client
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal Server Error",
			})
		}
	}
}

// RespondError writes an error response, preserving the specific kind for
// AppErrors so clients can render an actionable message.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message, "kind": appErr.Kind})
		return
	}
	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}

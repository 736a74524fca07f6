package middleware

import (
	"log/slog"
	"net/http"

	"hotelcore/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that reached the end of the chain without a
// response. Errors aborted through httperr carry their prepared envelope;
// anything else attached via c.Error is mapped through the booking error
// taxonomy so a missed translation still gets the right status.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]

			if ginErr.IsType(gin.ErrorTypePublic) {
				if resp, ok := ginErr.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if last := c.Errors.Last(); last != nil {
			status := httperr.StatusOf(last.Err)
			msg := last.Err.Error()
			if status == http.StatusInternalServerError {
				msg = "Internal server error"
				slog.Error("unhandled request error",
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"error", last.Err)
			}
			resp := httperr.Response{Status: status}
			resp.Error.Message = msg
			c.JSON(status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}

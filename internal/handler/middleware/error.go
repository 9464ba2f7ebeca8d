package middleware

import (
	"log/slog"
	"net/http"

	"booking-widget/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs the causes recorded by httperr.Abort and renders the
// last public error when a handler left the response unwritten.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && c.Writer.Status() >= http.StatusInternalServerError {
			for _, err := range c.Errors {
				logger.Error("Request failed",
					slog.String("request_id", GetRequestID(c)),
					slog.String("path", c.Request.URL.Path),
					slog.String("error", err.Err.Error()),
				)
			}
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.New(http.StatusInternalServerError, "Internal server error"))
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("recovered from panic",
					slog.Any("error", err),
					slog.String("request_id", GetRequestID(c)),
					slog.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.New(http.StatusInternalServerError, "Internal server error"))
			}
		}()
		c.Next()
	}
}

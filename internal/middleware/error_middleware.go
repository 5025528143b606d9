package middleware

import (
	"net/http"

	"chatterbox/internal/transport/httpdto"
	"chatterbox/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs errors attached by handlers. If a handler failed
// without writing a response, it answers with an empty envelope.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if c.Writer.Written() && c.Writer.Status() < http.StatusInternalServerError {
			if l != nil {
				l.WithContext(c.Request.Context()).Warnf("request rejected: %s", err.Error())
			}
			return
		}
		if l != nil {
			l.WithContext(c.Request.Context()).Errorf("request error: %s", err.Error())
		}
		if c.Writer.Written() {
			return
		}
		body, encErr := httpdto.NewEnvelope(nil).Encode()
		if encErr != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusInternalServerError, httpdto.ContentTypeJSON, body)
	}
}

package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger логирует запросы. Ошибки контекста попадают в лог вместе с приватными деталями.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "http",
		"module":    "router",
	})
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"clientIP": c.ClientIP(),
		}
		if id, exist := c.Get(CurrentUserIDKey); exist {
			fields["userID"] = id
		}

		reqEntry := entry.WithFields(fields)
		switch {
		case len(c.Errors) > 0 && c.Writer.Status() >= 500:
			reqEntry.WithError(c.Errors.Last()).Error("request failed")
		case len(c.Errors) > 0:
			reqEntry.WithField("errors", c.Errors.String()).Warn("request error")
		default:
			reqEntry.Info("request")
		}
	}
}

package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health GET HealthRoute.
func (h *HealthHandler) Health(c *gin.Context) {
	if h.db != nil {
		reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
		defer cancel()

		if err := h.db.Ping(reqCtx); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

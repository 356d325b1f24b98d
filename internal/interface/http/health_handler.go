package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-account-service/pkg/response"
)

// Pinger is satisfied by anything that can report store reachability
type Pinger interface {
	Ready(ctx context.Context) error
}

type HealthHandler struct {
	Store   Pinger
	Logger  *logrus.Logger
	Timeout time.Duration
}

func NewHealthHandler(store Pinger, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Store: store, Logger: logger, Timeout: 2 * time.Second}
}

// Health GET /healthz
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	if err := h.Store.Ready(ctx); err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("health check failed")
		}
		response.Error(c, http.StatusServiceUnavailable, "unavailable")
		return
	}
	response.Message(c, http.StatusOK, "ok")
}

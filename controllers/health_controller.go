package controllers

import (
	"context"
	"net/http"
	"time"

	"shopper-backend/models"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

// NewHealthController accepts a nil pinger for the in-memory driver.
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

func (ctrl *HealthController) Root(c *gin.Context) {
	c.String(http.StatusOK, "Express App is Running")
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (ctrl *HealthController) Health(c *gin.Context) {
	if ctrl.db == nil {
		c.JSON(http.StatusOK, models.HealthResponse{Status: "ok", Database: "memory"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := ctrl.db.Ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, models.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok", Database: "up"})
}

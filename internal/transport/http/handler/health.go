package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"agroassist/internal/bootstrap"
)

type HealthHandler struct {
	app *bootstrap.App
}

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

// Check always answers 200: the leaf model is optional and its absence
// only degrades /predict-leaf.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":          h.app.Config.App.Name,
		"env":          h.app.Config.App.Env,
		"uptime_sec":   int(time.Since(h.app.StartedAt).Seconds()),
		"model_loaded": h.app.Model.Available(),
	})
}

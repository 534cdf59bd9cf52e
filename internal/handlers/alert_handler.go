package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thoughtcode-25/DIGI-FARM/internal/metrics"
	"github.com/thoughtcode-25/DIGI-FARM/internal/services"
)

type AlertHandler struct {
	alerts *services.AlertService
	auth   *services.AuthService
}

func NewAlertHandler(alerts *services.AlertService, auth *services.AuthService) *AlertHandler {
	return &AlertHandler{alerts: alerts, auth: auth}
}

// GET /api/alerts/temperature
// Takes a fresh reading, evaluates it and reports the result. An alerting
// reading is also pushed out over the notifier channels.
func (h *AlertHandler) CheckTemperature(c *gin.Context) {
	recipient := ""
	farmName := "Farmer"
	if farmer, err := h.auth.FarmerByUsername(username(c)); err == nil {
		recipient = farmer.Phone
		farmName = farmer.Username
	}

	reading := h.alerts.ReadTemperature()
	alert := h.alerts.CheckTemperature(c.Request.Context(), farmName, recipient, reading)
	if alert == nil {
		c.JSON(http.StatusOK, gin.H{"temperature_c": reading, "status": "ok"})
		return
	}

	metrics.AlertsSent.Inc()
	c.JSON(http.StatusOK, gin.H{"temperature_c": reading, "status": alert.Status, "alert": alert})
}

// GET /api/alerts
func (h *AlertHandler) Recent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alerts": h.alerts.RecentAlerts()})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thoughtcode-25/DIGI-FARM/internal/metrics"
	"github.com/thoughtcode-25/DIGI-FARM/internal/services"
)

type RecordHandler struct {
	records *services.RecordService
}

func NewRecordHandler(records *services.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

// PUT /api/records
// body: { "date": "YYYY-MM-DD", "bird_count": n, "eggs_collected": n, "feed_kg": f, "other_expenses": f }
func (h *RecordHandler) UpsertRecord(c *gin.Context) {
	var req struct {
		Date          string  `json:"date" binding:"required"`
		BirdCount     int     `json:"bird_count"`
		EggsCollected int     `json:"eggs_collected"`
		FeedKg        float64 `json:"feed_kg"`
		OtherExpenses float64 `json:"other_expenses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	record, err := h.records.UpsertDailyRecord(farmerID(c), req.Date, req.BirdCount, req.EggsCollected, req.FeedKg, req.OtherExpenses)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.RecordsUpserted.Inc()
	c.JSON(http.StatusOK, gin.H{"record": record})
}

// GET /api/dashboard
func (h *RecordHandler) Dashboard(c *gin.Context) {
	snapshot, err := h.records.DashboardSnapshot(farmerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GET /api/records/series?days=7
func (h *RecordHandler) Series(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 365"})
			return
		}
		days = parsed
	}

	series, err := h.records.TimeSeries(farmerID(c), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}

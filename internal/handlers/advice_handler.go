package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thoughtcode-25/DIGI-FARM/internal/metrics"
	"github.com/thoughtcode-25/DIGI-FARM/internal/services"
)

// triage uploads are capped at 8MB
const maxImageBytes = 8 << 20

type AdviceHandler struct {
	advice *services.AdviceService
	auth   *services.AuthService
}

func NewAdviceHandler(advice *services.AdviceService, auth *services.AuthService) *AdviceHandler {
	return &AdviceHandler{advice: advice, auth: auth}
}

func (h *AdviceHandler) callerFarmType(c *gin.Context) string {
	farmer, err := h.auth.FarmerByUsername(username(c))
	if err != nil {
		return ""
	}
	return farmer.FarmType
}

// POST /api/advice
// body: { "question": "..." }
func (h *AdviceHandler) Ask(c *gin.Context) {
	var req struct {
		Question string `json:"question" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	advice, err := h.advice.Ask(c.Request.Context(), h.callerFarmType(c), req.Question)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.AdviceRequests.WithLabelValues(advice.Source).Inc()
	c.JSON(http.StatusOK, advice)
}

// POST /api/advice/image
// multipart form with an "image" file and an optional "symptoms" text field
func (h *AdviceHandler) Triage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "an image file is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image must be 8MB or smaller"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	triage, err := h.advice.TriageImage(c.Request.Context(), h.callerFarmType(c), image, fileHeader.Header.Get("Content-Type"), c.PostForm("symptoms"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, triage)
}

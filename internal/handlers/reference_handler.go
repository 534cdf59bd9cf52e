package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thoughtcode-25/DIGI-FARM/internal/services"
)

type ReferenceHandler struct {
	reference *services.ReferenceService
	auth      *services.AuthService
}

func NewReferenceHandler(reference *services.ReferenceService, auth *services.AuthService) *ReferenceHandler {
	return &ReferenceHandler{reference: reference, auth: auth}
}

// callerFarmType resolves the farm type filter: an explicit query parameter
// wins, otherwise the account's own farm type is used.
func (h *ReferenceHandler) callerFarmType(c *gin.Context) string {
	if ft := c.Query("farm_type"); ft != "" {
		return ft
	}
	farmer, err := h.auth.FarmerByUsername(username(c))
	if err != nil {
		return ""
	}
	return farmer.FarmType
}

// GET /api/diseases?q=...&farm_type=...
func (h *ReferenceHandler) Diseases(c *gin.Context) {
	diseases, err := h.reference.SearchDiseases(h.callerFarmType(c), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"diseases": diseases})
}

// GET /api/schemes?farm_type=...
func (h *ReferenceHandler) Schemes(c *gin.Context) {
	schemes, err := h.reference.ListSchemes(h.callerFarmType(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schemes": schemes})
}

// GET /api/statistics
func (h *ReferenceHandler) Statistics(c *gin.Context) {
	stats, err := h.reference.Statistics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}

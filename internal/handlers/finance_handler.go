package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thoughtcode-25/DIGI-FARM/internal/services"
)

type FinanceHandler struct {
	finance *services.FinanceService
}

func NewFinanceHandler(finance *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

type ledgerEntryRequest struct {
	Date        string  `json:"date" binding:"required"`
	Kind        string  `json:"kind" binding:"required"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// POST /api/finance/entries
func (h *FinanceHandler) AddEntry(c *gin.Context) {
	var req ledgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, kind and amount are required"})
		return
	}

	entry, err := h.finance.AddEntry(farmerID(c), req.Date, req.Kind, req.Amount, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// PUT /api/finance/entries/:id
func (h *FinanceHandler) UpdateEntry(c *gin.Context) {
	var req ledgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, kind and amount are required"})
		return
	}

	entry, err := h.finance.UpdateEntry(farmerID(c), c.Param("id"), req.Date, req.Kind, req.Amount, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// DELETE /api/finance/entries/:id
func (h *FinanceHandler) DeleteEntry(c *gin.Context) {
	if err := h.finance.DeleteEntry(farmerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GET /api/finance/summary
func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.finance.Summary(farmerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/services"
)

type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboard *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// GET /api/leaderboard?tier=village|district|state|national
func (h *LeaderboardHandler) Leaderboard(c *gin.Context) {
	tier := c.DefaultQuery("tier", models.TierNational)

	entries, err := h.leaderboard.Leaderboard(farmerID(c), tier)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tier": tier, "entries": entries})
}

// GET /api/leaderboard/ranks
func (h *LeaderboardHandler) Ranks(c *gin.Context) {
	ranks, err := h.leaderboard.RanksAcrossTiers(farmerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ranks": ranks})
}

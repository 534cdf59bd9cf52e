package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thoughtcode-25/DIGI-FARM/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// POST /api/auth/login
// body: { "username": "...", "password": "..." }
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	result, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	farmer, err := h.auth.FarmerByUsername(username(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"farmer": farmer})
}

// PATCH /api/me
// body: { "phone": "...", "farm_type": "chickens" | "pigs" | "both" }
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Phone    string `json:"phone"`
		FarmType string `json:"farm_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	farmer, err := h.auth.UpdateProfile(username(c), req.Phone, req.FarmType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"farmer": farmer})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thoughtcode-25/DIGI-FARM/internal/services"
)

type ChatHandler struct {
	chat *services.ChatService
}

func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// POST /api/chat
// body: { "message": "..." }
func (h *ChatHandler) Send(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	messages, err := h.chat.SendMessage(farmerID(c), username(c), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// GET /api/chat
func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.chat.History(farmerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// POST /api/visits
func (h *ChatHandler) AddVisit(c *gin.Context) {
	visit, err := h.chat.AddVisit(farmerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, visit)
}

// GET /api/visits/qr
func (h *ChatHandler) VisitQR(c *gin.Context) {
	png, err := h.chat.VisitQR(farmerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

package handlers

import (
	"net/http"

	"chcrent/models"
	"chcrent/services/assistant"

	"github.com/gin-gonic/gin"
)

// AssistantHandler exposes the conversational booking assistant.
type AssistantHandler struct {
	Svc assistant.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler instance.
func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Svc: svc}
}

// ChatHandler handles POST /api/assistant/chat.
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	resp, err := h.Svc.ProcessUserInput(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant request failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GreetingHandler handles GET /api/assistant/greeting.
func (h *AssistantHandler) GreetingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.Svc.Greeting(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant request failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/krishisahayak/krishibot-api/internal/domain"
	"github.com/krishisahayak/krishibot-api/internal/llm"
	"github.com/krishisahayak/krishibot-api/internal/service"
	"github.com/krishisahayak/krishibot-api/internal/session"
)

// ChatHandler serves the chat exchange and history endpoints.
type ChatHandler struct {
	logger   *zap.Logger
	chat     *service.ChatService
	registry *session.Registry
}

func NewChatHandler(logger *zap.Logger, chat *service.ChatService, registry *session.Registry) *ChatHandler {
	return &ChatHandler{
		logger:   logger,
		chat:     chat,
		registry: registry,
	}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		Message   string `json:"message"`
		Language  string `json:"language"`
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Message is required",
			"success":   false,
			"timestamp": timestamp(),
		})
		return
	}

	result, err := h.chat.Exchange(c.Request.Context(), req.Message, req.Language, req.SessionID)
	if err != nil {
		h.respondChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":  result.Response,
		"sessionId": result.SessionID,
		"category":  result.Category,
		"success":   true,
		"timestamp": timestamp(),
	})
}

// GetHistory handles GET /api/history/:sessionId. Unknown sessions
// yield an empty array, never a 404.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("sessionId")

	history := h.registry.History(sessionID)
	if history == nil {
		history = []domain.Turn{}
	}

	c.JSON(http.StatusOK, gin.H{
		"history":   history,
		"success":   true,
		"sessionId": sessionID,
	})
}

// ClearHistory handles DELETE /api/history/:sessionId, idempotently.
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	sessionID := c.Param("sessionId")
	h.registry.Clear(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message":   "Conversation history cleared",
		"success":   true,
		"sessionId": sessionID,
	})
}

// Health handles GET /api/health.
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": timestamp(),
		"service":   "KrishiBot API",
	})
}

func (h *ChatHandler) respondChatError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "An error occurred while processing your request."

	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		status = http.StatusBadRequest
		msg = "Message is required"
	case errors.Is(err, llm.ErrAuthConfig):
		status = http.StatusUnauthorized
		msg = "Invalid or missing API key configuration."
	case errors.Is(err, llm.ErrQuotaExceeded):
		status = http.StatusTooManyRequests
		msg = "API quota exceeded. Please try again later."
	case errors.Is(err, llm.ErrNetwork):
		status = http.StatusServiceUnavailable
		msg = "Network error. Please check your connection."
	}

	c.JSON(status, gin.H{
		"error":     msg,
		"success":   false,
		"timestamp": timestamp(),
	})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

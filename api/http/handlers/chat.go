package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hr360/assistant/api/http/presenter"
	"github.com/hr360/assistant/pkg/assistant"
)

type ChatHandler struct {
	svc assistant.Service
}

func NewChatHandler(svc assistant.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type chatRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

// Chat answers an HR question. The reply always carries a response text and
// follow-up suggestions, whatever the state of the AI provider.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Message) == "" {
		return presenter.Error(c, http.StatusBadRequest, "message is required")
	}

	reply := h.svc.Chat(c.Context(), req.Message, req.Context)
	return presenter.JSON(c, http.StatusOK, reply)
}

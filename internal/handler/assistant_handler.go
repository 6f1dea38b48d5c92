package handler

import (
	"github.com/gin-gonic/gin"

	"masjid/internal/service"
)

// AssistantHandler handles the AI ustadz chat.
type AssistantHandler struct {
	assistantService service.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantService service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Chat handles POST /api/v1/assistant/chat
// @Summary Ask the AI ustadz
// @Description Sends the conversation so far plus a new message and returns the model's reply
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ChatInput true "Conversation"
// @Success 200 {object} Response{data=service.ChatReply}
// @Failure 400 {object} ErrorResponseBody
// @Failure 502 {object} ErrorResponseBody
// @Failure 503 {object} ErrorResponseBody
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var input service.ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	reply, err := h.assistantService.Chat(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, reply)
}

package service

import (
	"context"
	"strings"

	"masjid/internal/domain"
	"masjid/internal/port"
)

// ChatInput is the DTO for assistant chat requests. History holds the
// earlier turns of the conversation, oldest first.
type ChatInput struct {
	History []domain.ChatMessage `json:"history" binding:"omitempty,dive"`
	Message string               `json:"message" binding:"required"`
}

// ChatReply is the assistant's answer.
type ChatReply struct {
	Role domain.ChatRole `json:"role"`
	Text string          `json:"text"`
}

// AssistantService defines the AI ustadz contract.
type AssistantService interface {
	Chat(ctx context.Context, input ChatInput) (*ChatReply, error)
}

type assistantService struct {
	assistant port.Assistant
}

// NewAssistantService creates a new AssistantService implementation.
func NewAssistantService(assistant port.Assistant) AssistantService {
	return &assistantService{assistant: assistant}
}

func (s *assistantService) Chat(ctx context.Context, input ChatInput) (*ChatReply, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domain.ErrEmptyQuestion
	}
	text, err := s.assistant.Reply(ctx, input.History, message)
	if err != nil {
		return nil, err
	}
	return &ChatReply{Role: domain.ChatRoleModel, Text: text}, nil
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"masjid/internal/domain"
	"masjid/internal/service"
	"masjid/mocks"
)

func TestAssistantService_Chat(t *testing.T) {
	assistant := new(mocks.MockAssistant)
	history := []domain.ChatMessage{{Role: domain.ChatRoleUser, Text: "Salam"}}
	assistant.On("Reply", mock.Anything, history, "Apa itu zakat?").Return("Zakat adalah...", nil)

	reply, err := service.NewAssistantService(assistant).Chat(context.Background(), service.ChatInput{History: history, Message: " Apa itu zakat? "})

	require.NoError(t, err)
	assert.Equal(t, &service.ChatReply{Role: domain.ChatRoleModel, Text: "Zakat adalah..."}, reply)
}

func TestAssistantService_Chat_BlankMessage(t *testing.T) {
	assistant := new(mocks.MockAssistant)

	_, err := service.NewAssistantService(assistant).Chat(context.Background(), service.ChatInput{Message: "  "})

	assert.ErrorIs(t, err, domain.ErrEmptyQuestion)
	assistant.AssertNotCalled(t, "Reply", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssistantService_Chat_Unavailable(t *testing.T) {
	assistant := new(mocks.MockAssistant)
	assistant.On("Reply", mock.Anything, mock.Anything, mock.Anything).Return("", domain.ErrAssistantUnavailable)

	_, err := service.NewAssistantService(assistant).Chat(context.Background(), service.ChatInput{Message: "halo"})

	assert.ErrorIs(t, err, domain.ErrAssistantUnavailable)
}

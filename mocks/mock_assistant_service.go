package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"masjid/internal/service"
)

// MockAssistantService is a mock implementation of service.AssistantService.
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) Chat(ctx context.Context, input service.ChatInput) (*service.ChatReply, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatReply), args.Error(1)
}

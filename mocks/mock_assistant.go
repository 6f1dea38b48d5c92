package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"masjid/internal/domain"
)

// MockAssistant is a mock implementation of port.Assistant.
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Reply(ctx context.Context, history []domain.ChatMessage, message string) (string, error) {
	args := m.Called(ctx, history, message)
	return args.String(0), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"masjid/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendNewConsultationEmail(ctx context.Context, toEmail string, question domain.Consultation) error {
	args := m.Called(ctx, toEmail, question)
	return args.Error(0)
}

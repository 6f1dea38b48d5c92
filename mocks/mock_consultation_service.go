package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"masjid/internal/domain"
	"masjid/internal/service"
)

// MockConsultationService is a mock implementation of service.ConsultationService.
type MockConsultationService struct {
	mock.Mock
}

func (m *MockConsultationService) List(ctx context.Context, user *domain.User) ([]domain.Consultation, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Consultation), args.Error(1)
}

func (m *MockConsultationService) Submit(ctx context.Context, user *domain.User, input service.SubmitConsultationInput) error {
	args := m.Called(ctx, user, input)
	return args.Error(0)
}

func (m *MockConsultationService) Answer(ctx context.Context, user *domain.User, id string, input service.AnswerConsultationInput) error {
	args := m.Called(ctx, user, id, input)
	return args.Error(0)
}

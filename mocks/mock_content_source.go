package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"masjid/internal/domain"
	"masjid/internal/port"
)

// MockContentSource is a mock implementation of port.ContentSource.
type MockContentSource struct {
	mock.Mock
}

func (m *MockContentSource) PrayerTimes(ctx context.Context) ([]domain.PrayerTime, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PrayerTime), args.Error(1)
}

func (m *MockContentSource) Programs(ctx context.Context) ([]domain.Program, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Program), args.Error(1)
}

func (m *MockContentSource) Profile(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockContentSource) BankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockContentSource) Posts(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *MockContentSource) PostByID(ctx context.Context, id string) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockContentSource) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockContentSource) Gallery(ctx context.Context) ([]domain.MediaItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *MockContentSource) Consultations(ctx context.Context) ([]domain.Consultation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Consultation), args.Error(1)
}

func (m *MockContentSource) SubmitConsultation(ctx context.Context, input port.SubmitConsultationInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockContentSource) AnswerConsultation(ctx context.Context, input port.AnswerConsultationInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockContentSource) Login(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

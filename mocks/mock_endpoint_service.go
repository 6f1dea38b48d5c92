package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"masjid/internal/service"
)

// MockEndpointService is a mock implementation of service.EndpointService.
type MockEndpointService struct {
	mock.Mock
}

func (m *MockEndpointService) Current() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockEndpointService) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEndpointService) Status() service.EndpointStatus {
	args := m.Called()
	return args.Get(0).(service.EndpointStatus)
}

func (m *MockEndpointService) Set(ctx context.Context, rawURL string) (*service.EndpointStatus, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EndpointStatus), args.Error(1)
}

func (m *MockEndpointService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

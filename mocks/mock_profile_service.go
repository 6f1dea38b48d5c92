package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"masjid/internal/orgchart"
	"masjid/internal/service"
)

// MockProfileService is a mock implementation of service.ProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Profile(ctx context.Context) (*service.ProfileView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileView), args.Error(1)
}

func (m *MockProfileService) OrgChart(ctx context.Context, filter string) (*orgchart.OrgChart, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orgchart.OrgChart), args.Error(1)
}

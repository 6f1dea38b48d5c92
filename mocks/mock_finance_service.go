package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"masjid/internal/domain"
)

// MockFinanceService is a mock implementation of service.FinanceService.
type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) Report(ctx context.Context) (*domain.FinanceReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceReport), args.Error(1)
}

func (m *MockFinanceService) ExportCSV(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockFinanceService) ExportXLSX(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

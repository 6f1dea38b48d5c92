package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"masjid/internal/service"
)

// MockMediaService is a mock implementation of service.MediaService.
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, input service.MediaUploadInput) (*service.MediaUpload, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MediaUpload), args.Error(1)
}

func (m *MockMediaService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

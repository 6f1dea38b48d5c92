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

func homeContent() *mocks.MockContentSource {
	content := new(mocks.MockContentSource)
	content.On("PrayerTimes", mock.Anything).Return([]domain.PrayerTime{{Name: "Subuh", Time: "04:35"}}, nil)
	content.On("Programs", mock.Anything).Return([]domain.Program{{Title: "TPA"}}, nil)
	content.On("BankAccounts", mock.Anything).Return(nil, nil)
	content.On("Posts", mock.Anything).Return(samplePosts(), nil)
	return content
}

func TestContentService_Home(t *testing.T) {
	content := homeContent()
	svc := service.NewContentService(content, service.NewPostService(content))

	home, err := svc.Home(context.Background())

	require.NoError(t, err)
	assert.Len(t, home.PrayerTimes, 1)
	assert.Len(t, home.Programs, 1)
	assert.NotNil(t, home.BankAccounts)
	assert.Equal(t, []string{"2", "3", "1"}, ids(home.LatestPosts))
}

func TestContentService_Home_FailsWhenAnyPartFails(t *testing.T) {
	content := new(mocks.MockContentSource)
	content.On("PrayerTimes", mock.Anything).Return(nil, domain.ErrUpstream)
	content.On("Programs", mock.Anything).Return([]domain.Program{}, nil)
	content.On("BankAccounts", mock.Anything).Return([]domain.BankAccount{}, nil)
	content.On("Posts", mock.Anything).Return([]domain.Post{}, nil)
	svc := service.NewContentService(content, service.NewPostService(content))

	_, err := svc.Home(context.Background())

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestContentService_GalleryNeverNil(t *testing.T) {
	content := new(mocks.MockContentSource)
	content.On("Gallery", mock.Anything).Return(nil, nil)

	items, err := service.NewContentService(content, nil).Gallery(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
}
